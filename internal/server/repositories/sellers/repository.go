// Package sellers provides persistence for seller accounts.
package sellers

import (
	"context"

	"github.com/s1lver29/book-store/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, seller *models.Seller) (*models.Seller, error)
	GetByID(ctx context.Context, id int64) (*models.Seller, error)
	GetByEmail(ctx context.Context, email string) (*models.Seller, error)
	List(ctx context.Context) ([]*models.Seller, error)
	Update(ctx context.Context, seller *models.Seller) (*models.Seller, error)
	Delete(ctx context.Context, id int64) error
}
