// Package repomanager wires repository constructors together and exposes a
// schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/s1lver29/book-store/internal/dbx"
	"github.com/s1lver29/book-store/internal/server/repositories/books"
	"github.com/s1lver29/book-store/internal/server/repositories/sellers"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can
// target either the shared connection pool or an open transaction.
type RepositoryManager interface {
	Sellers(db dbx.DBTX) sellers.Repository
	Books(db dbx.DBTX) books.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
