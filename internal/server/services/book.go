package services

import (
	"context"
	"database/sql"

	"github.com/s1lver29/book-store/internal/common"
	"github.com/s1lver29/book-store/internal/dbx"
	"github.com/s1lver29/book-store/internal/server/models"
	"github.com/s1lver29/book-store/internal/server/repositories/repomanager"
)

// CreateBookInput carries the fields a seller supplies when listing a book.
// The owning seller comes from the authenticated principal, never from the
// payload.
type CreateBookInput struct {
	Title  string
	Author string
	Year   int
	Pages  int
}

// UpdateBookInput is a partial update: nil fields keep their current
// values. The owning seller cannot be changed.
type UpdateBookInput struct {
	Title  *string
	Author *string
	Year   *int
	Pages  *int
}

// BookService implements book CRUD and the ownership rule on updates.
type BookService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewBookService(db *sql.DB, m repomanager.RepositoryManager) *BookService {
	return &BookService{db: db, repos: m}
}

// Create stores a new book owned by sellerID. The new row is self-owned, so
// no separate authorization check is needed.
func (s *BookService) Create(ctx context.Context, sellerID int64, in CreateBookInput) (*models.Book, error) {
	book := &models.Book{
		Title:    in.Title,
		Author:   in.Author,
		Year:     in.Year,
		Pages:    in.Pages,
		SellerID: sellerID,
	}

	return s.repos.Books(s.db).Create(ctx, book)
}

func (s *BookService) List(ctx context.Context) ([]*models.Book, error) {
	return s.repos.Books(s.db).List(ctx)
}

func (s *BookService) Get(ctx context.Context, id int64) (*models.Book, error) {
	return s.repos.Books(s.db).GetByID(ctx, id)
}

// Update applies a partial update on behalf of principal. Existence is
// checked before ownership: a missing book is common.ErrorNotFound even for
// a caller who would not own it, and a book owned by another seller is
// common.ErrorForbidden. Read, check, and write run in one transaction.
func (s *BookService) Update(ctx context.Context, id int64, principal *models.Seller, in UpdateBookInput) (*models.Book, error) {
	var updated *models.Book

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Books(tx)

		book, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if book.SellerID != principal.ID {
			return common.ErrorForbidden
		}

		if in.Title != nil {
			book.Title = *in.Title
		}
		if in.Author != nil {
			book.Author = *in.Author
		}
		if in.Year != nil {
			book.Year = *in.Year
		}
		if in.Pages != nil {
			book.Pages = *in.Pages
		}

		updated, err = repo.Update(ctx, book)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	return s.repos.Books(s.db).Delete(ctx, id)
}
