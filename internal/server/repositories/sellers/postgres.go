package sellers

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

func (r *PostgresRepository) Create(ctx context.Context, seller *models.Seller) (*models.Seller, error) {

	query :=
		`INSERT INTO sellers (first_name, last_name, e_mail, password)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		seller.FirstName, seller.LastName, seller.Email, seller.PasswordHash).Scan(&seller.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return seller, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	query :=
		`SELECT id, first_name, last_name, e_mail, password FROM sellers
		 WHERE id = $1
		 `

	seller := &models.Seller{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&seller.ID, &seller.FirstName, &seller.LastName, &seller.Email, &seller.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return seller, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	query :=
		`SELECT id, first_name, last_name, e_mail, password FROM sellers
		 WHERE e_mail = $1
		 `

	seller := &models.Seller{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&seller.ID, &seller.FirstName, &seller.LastName, &seller.Email, &seller.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return seller, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Seller, error) {
	query :=
		`SELECT id, first_name, last_name, e_mail, password FROM sellers
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Seller
	for rows.Next() {
		seller := &models.Seller{}
		if err := rows.Scan(&seller.ID, &seller.FirstName, &seller.LastName, &seller.Email, &seller.PasswordHash); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, seller)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, seller *models.Seller) (*models.Seller, error) {
	query :=
		`UPDATE sellers SET first_name = $1, last_name = $2, e_mail = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query,
		seller.FirstName, seller.LastName, seller.Email, seller.ID)
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

	return seller, nil
}

// Delete removes a seller row. Books referencing the seller are removed by
// the ON DELETE CASCADE constraint on books.seller_id.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM sellers
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
