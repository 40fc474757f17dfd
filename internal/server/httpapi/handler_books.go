package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/s1lver29/book-store/internal/server/models"
	"github.com/s1lver29/book-store/internal/server/services"
)

type bookPayload struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     int    `json:"year"`
	Pages    int    `json:"pages"`
	SellerID int64  `json:"seller_id"`
}

type createBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Pages  int    `json:"pages"`
}

// updateBookRequest is a partial update: absent fields keep the stored
// values. A seller_id in the payload is ignored; ownership is immutable.
type updateBookRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
	Pages  *int    `json:"pages"`
}

type allBooksResponse struct {
	Books []bookPayload `json:"books"`
}

func toBookPayload(b *models.Book) bookPayload {
	return bookPayload{ID: b.ID, Title: b.Title, Author: b.Author, Year: b.Year, Pages: b.Pages, SellerID: b.SellerID}
}

// A book must have at least one page and a publication year that is not in
// the future.
func validBookFields(year, pages int) bool {
	return year > 0 && year <= time.Now().Year() && pages >= 1
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.Author == "" || !validBookFields(req.Year, req.Pages) {
		writeDetail(w, http.StatusBadRequest, "Invalid book data")
		return
	}

	principal := principalFrom(r.Context())

	book, err := s.books.Create(r.Context(), principal.ID, services.CreateBookInput{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Pages:  req.Pages,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "Book not found")
		return
	}

	writeJSON(w, http.StatusCreated, toBookPayload(book))
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	allBooks, err := s.books.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "Book not found")
		return
	}

	resp := allBooksResponse{Books: make([]bookPayload, 0, len(allBooks))}
	for _, b := range allBooks {
		resp.Books = append(resp.Books, toBookPayload(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	book, err := s.books.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "Book not found")
		return
	}

	writeJSON(w, http.StatusOK, toBookPayload(book))
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Year != nil && (*req.Year <= 0 || *req.Year > time.Now().Year()) {
		writeDetail(w, http.StatusBadRequest, "Invalid book data")
		return
	}
	if req.Pages != nil && *req.Pages < 1 {
		writeDetail(w, http.StatusBadRequest, "Invalid book data")
		return
	}

	principal := principalFrom(r.Context())

	book, err := s.books.Update(r.Context(), id, principal, services.UpdateBookInput{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Pages:  req.Pages,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "Book not found")
		return
	}

	writeJSON(w, http.StatusOK, toBookPayload(book))
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.books.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "Book not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
