// Package auth implements the authentication primitives of the server:
// password hashing and the access-token codec.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s1lver29/book-store/internal/common"
)

// Codec issues and validates HS256-signed access tokens. The secret and TTL
// are fixed at construction; rotating the secret invalidates every token
// issued before the rotation.
//
// Codec has no mutable state and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// Issue builds a token whose subject is the seller's email, issued now and
// expiring after the configured TTL.
func (c *Codec) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate verifies the signature and expiry of tokenString and returns its
// subject. Every failure mode (malformed structure, wrong algorithm, bad
// signature, expired or missing claims) collapses into
// common.ErrorInvalidToken so callers never see a partially trusted claim
// set.
func (c *Codec) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", common.ErrorInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrorInvalidToken
	}

	return claims.Subject, nil
}
