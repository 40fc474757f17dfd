package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/s1lver29/book-store/internal/dbx"
	"github.com/s1lver29/book-store/internal/server/config"
	"github.com/s1lver29/book-store/internal/server/models"
	booksrepo "github.com/s1lver29/book-store/internal/server/repositories/books"
	sellersrepo "github.com/s1lver29/book-store/internal/server/repositories/sellers"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
}

// --- fakes ---

type fakeSellersRepo struct {
	lastCreated *models.Seller
	createErr   error

	byEmailOut *models.Seller
	byEmailErr error

	byIDOut *models.Seller
	byIDErr error

	listOut []*models.Seller
	listErr error

	lastUpdated *models.Seller
	updateErr   error

	deletedID int64
	deleteErr error
}

func (f *fakeSellersRepo) Create(ctx context.Context, s *models.Seller) (*models.Seller, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s.ID = 1
	f.lastCreated = s
	return s, nil
}

func (f *fakeSellersRepo) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeSellersRepo) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeSellersRepo) List(ctx context.Context) ([]*models.Seller, error) {
	return f.listOut, f.listErr
}

func (f *fakeSellersRepo) Update(ctx context.Context, s *models.Seller) (*models.Seller, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastUpdated = s
	return s, nil
}

func (f *fakeSellersRepo) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeBooksRepo struct {
	lastCreated *models.Book
	createErr   error

	byIDOut *models.Book
	byIDErr error

	listOut []*models.Book
	listErr error

	bySellerOut []*models.Book
	bySellerErr error

	lastUpdated *models.Book
	updateErr   error

	deletedID int64
	deleteErr error
}

func (f *fakeBooksRepo) Create(ctx context.Context, b *models.Book) (*models.Book, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 1
	f.lastCreated = b
	return b, nil
}

func (f *fakeBooksRepo) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeBooksRepo) List(ctx context.Context) ([]*models.Book, error) {
	return f.listOut, f.listErr
}

func (f *fakeBooksRepo) ListBySeller(ctx context.Context, sellerID int64) ([]*models.Book, error) {
	if f.bySellerErr != nil {
		return nil, f.bySellerErr
	}
	return f.bySellerOut, nil
}

func (f *fakeBooksRepo) Update(ctx context.Context, b *models.Book) (*models.Book, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastUpdated = b
	return b, nil
}

func (f *fakeBooksRepo) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

// fakeRepoManager hands out the same fakes for every DBTX, so transactional
// and non-transactional paths hit the same state.
type fakeRepoManager struct {
	sellers *fakeSellersRepo
	books   *fakeBooksRepo
}

func (m *fakeRepoManager) Sellers(db dbx.DBTX) sellersrepo.Repository { return m.sellers }
func (m *fakeRepoManager) Books(db dbx.DBTX) booksrepo.Repository    { return m.books }
func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
