package books

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/s1lver29/book-store/internal/common"
	"github.com/s1lver29/book-store/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+books\s*\(title,\s*author,\s*year,\s*pages,\s*seller_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id"}).AddRow(7)
	mock.ExpectQuery(q).
		WithArgs("Dune", "Herbert", 1965, 412, int64(1)).
		WillReturnRows(rows)

	b := &models.Book{Title: "Dune", Author: "Herbert", Year: 1965, Pages: 412, SellerID: 1}
	got, err := repo.Create(context.Background(), b)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 || got.SellerID != 1 {
		t.Fatalf("unexpected book: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+books`).
		WithArgs("Dune", "Herbert", 1965, 412, int64(1)).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Book{Title: "Dune", Author: "Herbert", Year: 1965, Pages: 412, SellerID: 1})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "author", "year", "pages", "seller_id"}).
		AddRow(7, "Dune", "Herbert", 1965, 412, 1)
	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*title,\s*author,\s*year,\s*pages,\s*seller_id\s+FROM\s+books\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Title != "Dune" || got.SellerID != 1 {
		t.Fatalf("unexpected book: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+books\s+WHERE\s+id`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestListBySeller_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "author", "year", "pages", "seller_id"}).
		AddRow(1, "Dune", "Herbert", 1965, 412, 3).
		AddRow(2, "Solaris", "Lem", 1961, 204, 3)
	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+books\s+WHERE\s+seller_id\s*=\s*\$1`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	got, err := repo.ListBySeller(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListBySeller error: %v", err)
	}
	if len(got) != 2 || got[1].Title != "Solaris" {
		t.Fatalf("unexpected books: %+v", got)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+books\s+SET\s+title\s*=\s*\$1,\s*author\s*=\s*\$2,\s*year\s*=\s*\$3,\s*pages\s*=\s*\$4\s+WHERE\s+id\s*=\s*\$5`).
		WithArgs("Dune", "Frank Herbert", 1965, 412, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Update(context.Background(), &models.Book{ID: 7, Title: "Dune", Author: "Frank Herbert", Year: 1965, Pages: 412, SellerID: 1})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Author != "Frank Herbert" {
		t.Fatalf("unexpected book: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+books\s+SET`).
		WithArgs("Dune", "Herbert", 1965, 412, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &models.Book{ID: 404, Title: "Dune", Author: "Herbert", Year: 1965, Pages: 412})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+books`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
