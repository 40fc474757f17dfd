// Package services contains server-side business logic. This file implements
// SellerService: registration, login, token resolution, and seller CRUD.
package services

import (
	"context"
	"errors"
	"fmt"

	"database/sql"

	"github.com/s1lver29/book-store/internal/common"
	"github.com/s1lver29/book-store/internal/server/auth"
	"github.com/s1lver29/book-store/internal/server/config"
	"github.com/s1lver29/book-store/internal/server/models"
	"github.com/s1lver29/book-store/internal/server/repositories/repomanager"
)

// RegisterSellerInput carries the fields needed to create an account.
// Password is the plaintext; it is hashed before it reaches storage.
type RegisterSellerInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateSellerInput carries the mutable profile fields of a seller.
// The password is not updatable through this path.
type UpdateSellerInput struct {
	FirstName string
	LastName  string
	Email     string
}

// SellerService provides account operations:
// - Register: create sellers with a hashed password
// - Login: verify credentials and mint an access token
// - ResolveToken: recover the authenticated seller from a bearer token
// plus plain CRUD over seller rows.
type SellerService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	codec *auth.Codec
}

// NewSellerService constructs a SellerService using repositories and server
// config. The token codec is built here so the signing secret lives in
// exactly one place.
func NewSellerService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SellerService {
	return &SellerService{
		db:    db,
		repos: m,
		codec: auth.NewCodec([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration),
	}
}

// Register creates a new seller. The plaintext password is hashed and then
// discarded; only the digest is stored.
func (s *SellerService) Register(ctx context.Context, in RegisterSellerInput) (*models.Seller, error) {
	digest, err := auth.HashPassword([]byte(in.Password))
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	seller := &models.Seller{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: digest,
	}

	repo := s.repos.Sellers(s.db)
	created, err := repo.Create(ctx, seller)
	if err != nil {
		return nil, fmt.Errorf("error creating seller: %w", err)
	}

	return created, nil
}

// Login verifies the email/password pair and returns a signed access token.
// Unknown email and wrong password both yield common.ErrorInvalidCredentials
// so a caller cannot probe which accounts exist.
func (s *SellerService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repos.Sellers(s.db)

	seller, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.VerifyPassword([]byte(password), seller.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := s.codec.Issue(seller.Email)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// ResolveToken validates a bearer token and loads the seller named by its
// subject. A forged/expired token and a valid token whose seller has been
// deleted collapse into the same common.ErrorUnauthorized.
func (s *SellerService) ResolveToken(ctx context.Context, token string) (*models.Seller, error) {
	subject, err := s.codec.Validate(token)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repos.Sellers(s.db)
	seller, err := repo.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return seller, nil
}

func (s *SellerService) List(ctx context.Context) ([]*models.Seller, error) {
	return s.repos.Sellers(s.db).List(ctx)
}

// Get returns the seller and its books.
func (s *SellerService) Get(ctx context.Context, id int64) (*models.Seller, []*models.Book, error) {
	seller, err := s.repos.Sellers(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	sellerBooks, err := s.repos.Books(s.db).ListBySeller(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return seller, sellerBooks, nil
}

func (s *SellerService) Update(ctx context.Context, id int64, in UpdateSellerInput) (*models.Seller, error) {
	repo := s.repos.Sellers(s.db)

	seller, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seller.FirstName = in.FirstName
	seller.LastName = in.LastName
	seller.Email = in.Email

	return repo.Update(ctx, seller)
}

// Delete removes a seller; the schema cascades the delete to its books so
// no partial state is ever visible.
func (s *SellerService) Delete(ctx context.Context, id int64) error {
	return s.repos.Sellers(s.db).Delete(ctx, id)
}
