// Package models holds the persistent entities of the book store.
package models

// Seller is a registered account. It owns zero or more books; deleting a
// seller cascades to its books. PasswordHash is an opaque argon2id digest,
// never the plaintext.
type Seller struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}
