package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/s1lver29/book-store/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail writes the error body shape used across the API:
// {"detail": "..."}.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeServiceError maps sentinel errors from the service layer onto HTTP
// statuses. notFoundDetail lets each resource keep its own 404 wording.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeDetail(w, http.StatusNotFound, notFoundDetail)
	case errors.Is(err, common.ErrorForbidden):
		writeDetail(w, http.StatusForbidden, "You are not allowed to update this book")
	case errors.Is(err, common.ErrorUnauthorized):
		unauthenticated(w)
	default:
		s.logger.Error(r.Context(), "internal error", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
