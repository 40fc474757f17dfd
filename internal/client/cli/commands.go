package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/s1lver29/book-store/internal/client/api"
	"github.com/s1lver29/book-store/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	seller, err := a.api.Register(ctx, firstName, lastName, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered seller %d (%s)\n", seller.ID, seller.Email)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Token (pass via -token):\n%s\n", token)
	return nil
}

func (a *App) listSellers(ctx context.Context) error {
	sellers, err := a.api.ListSellers(ctx)
	if err != nil {
		return err
	}

	for _, s := range sellers {
		fmt.Fprintf(a.out, "%d\t%s %s\t%s\n", s.ID, s.FirstName, s.LastName, s.Email)
	}
	return nil
}

func (a *App) showSeller(ctx context.Context, id int64) error {
	seller, err := a.api.GetSeller(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d\t%s %s\t%s\n", seller.ID, seller.FirstName, seller.LastName, seller.Email)
	for _, b := range seller.Books {
		fmt.Fprintf(a.out, "  book %d\t%q by %s\n", b.ID, b.Title, b.Author)
	}
	return nil
}

func (a *App) listBooks(ctx context.Context) error {
	books, err := a.api.ListBooks(ctx)
	if err != nil {
		return err
	}

	for _, b := range books {
		fmt.Fprintf(a.out, "%d\t%q by %s (%d, %d pages, seller %d)\n",
			b.ID, b.Title, b.Author, b.Year, b.Pages, b.SellerID)
	}
	return nil
}

func (a *App) showBook(ctx context.Context, id int64) error {
	b, err := a.api.GetBook(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d\t%q by %s (%d, %d pages, seller %d)\n",
		b.ID, b.Title, b.Author, b.Year, b.Pages, b.SellerID)
	return nil
}

func (a *App) addBook(ctx context.Context) error {
	in, err := a.promptBook(true)
	if err != nil {
		return err
	}

	book, err := a.api.AddBook(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added book %d\n", book.ID)
	return nil
}

func (a *App) updateBook(ctx context.Context, id int64) error {
	in, err := a.promptBook(false)
	if err != nil {
		return err
	}

	book, err := a.api.UpdateBook(ctx, id, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated book %d\n", book.ID)
	return nil
}

// promptBook collects book fields. When required is false, empty answers
// are omitted from the payload so the server keeps the stored values.
func (a *App) promptBook(required bool) (api.BookInput, error) {
	var in api.BookInput

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return in, err
	}
	if title != "" || required {
		in.Title = &title
	}

	author, err := getSimpleText(a.reader, "Enter author", a.out)
	if err != nil {
		return in, err
	}
	if author != "" || required {
		in.Author = &author
	}

	yearText, err := getSimpleText(a.reader, "Enter publication year", a.out)
	if err != nil {
		return in, err
	}
	if yearText != "" || required {
		year, err := strconv.Atoi(yearText)
		if err != nil {
			return in, fmt.Errorf("invalid year %q", yearText)
		}
		in.Year = &year
	}

	pagesText, err := getSimpleText(a.reader, "Enter page count", a.out)
	if err != nil {
		return in, err
	}
	if pagesText != "" || required {
		pages, err := strconv.Atoi(pagesText)
		if err != nil {
			return in, fmt.Errorf("invalid page count %q", pagesText)
		}
		in.Pages = &pages
	}

	return in, nil
}
