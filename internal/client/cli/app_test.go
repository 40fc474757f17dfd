package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s1lver29/book-store/internal/client/api"
)

func newTestApp(serverURL string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		api:    api.New(serverURL),
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
	}, &out
}

// stubPrompts replaces the interactive input seams with canned answers.
func stubPrompts(t *testing.T, answers []string, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})

	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		require.Less(t, i, len(answers), "unexpected prompt %q", prompt)
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _ := newTestApp("http://localhost:0")

	err := app.Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRun_NoCommand(t *testing.T) {
	app, _ := newTestApp("http://localhost:0")

	err := app.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command given")
}

func TestRun_BadIDArgument(t *testing.T) {
	app, _ := newTestApp("http://localhost:0")

	err := app.Run(context.Background(), []string{"book", "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")

	err = app.Run(context.Background(), []string{"book"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id argument required")
}

func TestRegisterCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/sellers/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ray", body["first_name"])
		assert.Equal(t, "s3cret", body["password"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "e_mail": body["e_mail"]})
	}))
	defer srv.Close()

	stubPrompts(t, []string{"Ray", "Bradbury", "ray@example.com"}, "s3cret")

	app, out := newTestApp(srv.URL)
	require.NoError(t, app.Run(context.Background(), []string{"register"}))
	assert.Contains(t, out.String(), "Registered seller 1 (ray@example.com)")
}

func TestLoginCommand_PrintsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/token", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok123", "token_type": "bearer"})
	}))
	defer srv.Close()

	stubPrompts(t, []string{"ray@example.com"}, "s3cret")

	app, out := newTestApp(srv.URL)
	require.NoError(t, app.Run(context.Background(), []string{"login"}))
	assert.Contains(t, out.String(), "tok123")
}

func TestBooksCommand_ListsBooks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/books/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"books": []map[string]any{
			{"id": 1, "title": "Fahrenheit 451", "author": "Bradbury", "year": 1953, "pages": 158, "seller_id": 7},
		}})
	}))
	defer srv.Close()

	app, out := newTestApp(srv.URL)
	require.NoError(t, app.Run(context.Background(), []string{"books"}))
	assert.Contains(t, out.String(), `"Fahrenheit 451" by Bradbury`)
}

func TestUpdateBookCommand_OmitsEmptyAnswers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/v1/books/3", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Contains(t, raw, "pages")
		assert.NotContains(t, raw, "title")
		assert.NotContains(t, raw, "author")
		assert.NotContains(t, raw, "year")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "pages": 256})
	}))
	defer srv.Close()

	stubPrompts(t, []string{"", "", "", "256"}, "")

	app, out := newTestApp(srv.URL)
	require.NoError(t, app.Run(context.Background(), []string{"update-book", "3"}))
	assert.Contains(t, out.String(), "Updated book 3")
}
