// Package common defines shared constants and sentinel errors used across
// client and server layers of the book store. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Login errors. Unknown email and wrong password are deliberately
	// indistinguishable.
	ErrorInvalidCredentials = errors.New("incorrect email or password")

	// Auth errors (missing, malformed, expired or forged token, or a token
	// whose subject no longer exists).
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInvalidToken = errors.New("invalid token")

	// Ownership errors (authenticated but not the resource owner).
	ErrorForbidden = errors.New("forbidden")
)
