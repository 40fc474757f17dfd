// Package httpapi exposes the book store over HTTP: JSON CRUD for sellers
// and books, a form-encoded login endpoint, and bearer-token protection on
// the routes that mutate seller-owned data.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/s1lver29/book-store/internal/logging"
	"github.com/s1lver29/book-store/internal/server/services"
)

type Server struct {
	address string
	logger  logging.Logger
	sellers *services.SellerService
	books   *services.BookService
}

func NewServer(address string, l logging.Logger, ss *services.SellerService, bs *services.BookService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		sellers: ss,
		books:   bs,
	}
}

// Handler builds the route table. Seller detail, book create, and book
// update require a bearer token; the remaining routes are public.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/token", s.handleLogin)

	mux.HandleFunc("POST /api/v1/sellers/{$}", s.handleCreateSeller)
	mux.HandleFunc("GET /api/v1/sellers/{$}", s.handleListSellers)
	mux.HandleFunc("GET /api/v1/sellers/{id}", s.requireAuth(s.handleGetSeller))
	mux.HandleFunc("PUT /api/v1/sellers/{id}", s.handleUpdateSeller)
	mux.HandleFunc("DELETE /api/v1/sellers/{id}", s.handleDeleteSeller)

	mux.HandleFunc("POST /api/v1/books/{$}", s.requireAuth(s.handleCreateBook))
	mux.HandleFunc("GET /api/v1/books/{$}", s.handleListBooks)
	mux.HandleFunc("GET /api/v1/books/{id}", s.handleGetBook)
	mux.HandleFunc("PUT /api/v1/books/{id}", s.requireAuth(s.handleUpdateBook))
	mux.HandleFunc("DELETE /api/v1/books/{id}", s.handleDeleteBook)

	return s.logRequests(mux)
}

// Run serves until ctx is cancelled, then shuts the listener down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
