package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/s1lver29/book-store/internal/common"
	"github.com/s1lver29/book-store/internal/dbx"
	"github.com/s1lver29/book-store/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, book *models.Book) (*models.Book, error) {

	query :=
		`INSERT INTO books (title, author, year, pages, seller_id)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		book.Title, book.Author, book.Year, book.Pages, book.SellerID).Scan(&book.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return book, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	query :=
		`SELECT id, title, author, year, pages, seller_id FROM books
		 WHERE id = $1
		 `

	book := &models.Book{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID, &book.Title, &book.Author, &book.Year, &book.Pages, &book.SellerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return book, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Book, error) {
	query :=
		`SELECT id, title, author, year, pages, seller_id FROM books
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *PostgresRepository) ListBySeller(ctx context.Context, sellerID int64) ([]*models.Book, error) {
	query :=
		`SELECT id, title, author, year, pages, seller_id FROM books
		 WHERE seller_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func scanBooks(rows *sql.Rows) ([]*models.Book, error) {
	var result []*models.Book
	for rows.Next() {
		book := &models.Book{}
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Year, &book.Pages, &book.SellerID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update rewrites every mutable column. The owning seller is not part of
// the update: seller_id is fixed at creation.
func (r *PostgresRepository) Update(ctx context.Context, book *models.Book) (*models.Book, error) {
	query :=
		`UPDATE books SET title = $1, author = $2, year = $3, pages = $4
		 WHERE id = $5
		 `

	res, err := r.db.ExecContext(ctx, query,
		book.Title, book.Author, book.Year, book.Pages, book.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrorNotFound
	}

	return book, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM books
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
