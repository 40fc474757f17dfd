package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/s1lver29/book-store/internal/server/models"
	"github.com/s1lver29/book-store/internal/server/services"
)

// The "e_mail" field name is part of the public JSON contract.
type sellerPayload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"e_mail"`
}

type sellerWithBooks struct {
	sellerPayload
	Books []bookPayload `json:"books"`
}

type createSellerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"e_mail"`
	Password  string `json:"password"`
}

type updateSellerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"e_mail"`
}

func toSellerPayload(s *models.Seller) sellerPayload {
	return sellerPayload{ID: s.ID, FirstName: s.FirstName, LastName: s.LastName, Email: s.Email}
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func (s *Server) handleCreateSeller(w http.ResponseWriter, r *http.Request) {
	var req createSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Password == "" || !validEmail(req.Email) {
		writeDetail(w, http.StatusBadRequest, "Invalid seller data")
		return
	}

	seller, err := s.sellers.Register(r.Context(), services.RegisterSellerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "Seller not found")
		return
	}

	writeJSON(w, http.StatusCreated, toSellerPayload(seller))
}

func (s *Server) handleListSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := s.sellers.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "Seller not found")
		return
	}

	payload := make([]sellerPayload, 0, len(sellers))
	for _, seller := range sellers {
		payload = append(payload, toSellerPayload(seller))
	}

	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleGetSeller(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	seller, sellerBooks, err := s.sellers.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "Seller not found")
		return
	}

	resp := sellerWithBooks{sellerPayload: toSellerPayload(seller), Books: make([]bookPayload, 0, len(sellerBooks))}
	for _, b := range sellerBooks {
		resp.Books = append(resp.Books, toBookPayload(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateSeller(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" || !validEmail(req.Email) {
		writeDetail(w, http.StatusBadRequest, "Invalid seller data")
		return
	}

	seller, err := s.sellers.Update(r.Context(), id, services.UpdateSellerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "Seller not found")
		return
	}

	writeJSON(w, http.StatusOK, toSellerPayload(seller))
}

func (s *Server) handleDeleteSeller(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.sellers.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "Seller not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment. The routes only bind integer ids,
// so a non-numeric id is reported as 404 rather than 400.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}
