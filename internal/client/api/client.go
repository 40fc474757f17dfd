// Package api is a thin HTTP client for the book-store server, used by the
// command-line client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Seller mirrors the server's seller payload.
type Seller struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"e_mail"`
	Books     []Book `json:"books,omitempty"`
}

// Book mirrors the server's book payload.
type Book struct {
	ID       int64 `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     int   `json:"year"`
	Pages    int   `json:"pages"`
	SellerID int64 `json:"seller_id"`
}

// BookInput carries the fields sent when creating or updating a book.
// Pointers distinguish "not set" from zero on updates.
type BookInput struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	Year   *int    `json:"year,omitempty"`
	Pages  *int    `json:"pages,omitempty"`
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Detail)
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login exchanges credentials for an access token and remembers it for
// subsequent calls on this client.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.send(req, http.StatusOK, &resp); err != nil {
		return "", err
	}

	c.token = resp.AccessToken
	return resp.AccessToken, nil
}

// Register creates a seller account.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (*Seller, error) {
	body := map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"e_mail":     email,
		"password":   password,
	}

	var seller Seller
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/sellers/", body, http.StatusCreated, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (c *Client) ListSellers(ctx context.Context) ([]Seller, error) {
	var sellers []Seller
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/sellers/", nil, http.StatusOK, &sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

func (c *Client) GetSeller(ctx context.Context, id int64) (*Seller, error) {
	var seller Seller
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/sellers/%d", id), nil, http.StatusOK, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	var resp struct {
		Books []Book `json:"books"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/books/", nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Books, nil
}

func (c *Client) GetBook(ctx context.Context, id int64) (*Book, error) {
	var book Book
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/books/%d", id), nil, http.StatusOK, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) AddBook(ctx context.Context, in BookInput) (*Book, error) {
	var book Book
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/books/", in, http.StatusCreated, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, in BookInput) (*Book, error) {
	var book Book
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/v1/books/%d", id), in, http.StatusOK, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/books/%d", id), nil, http.StatusNoContent, nil)
}

// doJSON sends an optional JSON body and decodes an optional JSON response.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, wantStatus, out)
}

func (c *Client) send(req *http.Request, wantStatus int, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}
	if apiErr.Detail == "" {
		apiErr.Detail = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
