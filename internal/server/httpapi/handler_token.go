package httpapi

import (
	"errors"
	"net/http"

	"github.com/s1lver29/book-store/internal/common"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleLogin implements the OAuth2 password form: fields "username" (the
// seller's email) and "password". Failures are reported with one uniform
// message regardless of whether the email exists.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := s.sellers.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		s.writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
