package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/s1lver29/book-store/internal/server/models"
)

type ctxKey string

const principalKey ctxKey = "principal"

// requireAuth resolves the bearer token into a seller and stores it in the
// request context. A missing header, an invalid token, and a token whose
// seller no longer exists all produce the same 401 with a Bearer challenge.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			unauthenticated(w)
			return
		}

		seller, err := s.sellers.ResolveToken(r.Context(), token)
		if err != nil {
			unauthenticated(w)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, seller)
		next(w, r.WithContext(ctx))
	}
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// principalFrom returns the seller attached by requireAuth. It is only
// reachable from protected handlers, so the value is always present there.
func principalFrom(ctx context.Context) *models.Seller {
	seller, _ := ctx.Value(principalKey).(*models.Seller)
	return seller
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
}

// statusRecorder captures the status code a handler writes.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one line per request with a generated request id.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"request_id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
