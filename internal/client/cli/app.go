// Package cli implements the interactive command-line client for the
// book-store HTTP API.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/s1lver29/book-store/internal/client/api"
)

// App dispatches one command per invocation. Commands that mutate books
// need a token obtained with the login command and passed back via the
// -token flag.
type App struct {
	api    *api.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(client *api.Client) *App {
	return &App{
		api:    client,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Usage lists the available commands.
func (a *App) Usage() string {
	return `commands:
  register             create a seller account
  login                obtain an access token
  sellers              list sellers
  seller <id>          show a seller and their books (requires -token)
  books                list books
  book <id>            show one book
  add-book             add a book (requires -token)
  update-book <id>     update an owned book (requires -token)
  delete-book <id>     delete a book`
}

// Run executes a single command with its arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given\n%s", a.Usage())
	}

	switch args[0] {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "sellers":
		return a.listSellers(ctx)
	case "seller":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		return a.showSeller(ctx, id)
	case "books":
		return a.listBooks(ctx)
	case "book":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		return a.showBook(ctx, id)
	case "add-book":
		return a.addBook(ctx)
	case "update-book":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		return a.updateBook(ctx, id)
	case "delete-book":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		return a.api.DeleteBook(ctx, id)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], a.Usage())
	}
}

func idArg(args []string) (int64, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s: id argument required", args[0])
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid id %q", args[0], args[1])
	}
	return id, nil
}
