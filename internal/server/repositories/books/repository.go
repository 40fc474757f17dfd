// Package books provides persistence for the book inventory.
package books

import (
	"context"

	"github.com/s1lver29/book-store/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, book *models.Book) (*models.Book, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	List(ctx context.Context) ([]*models.Book, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]*models.Book, error)
	Update(ctx context.Context, book *models.Book) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
}
