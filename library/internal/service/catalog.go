package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/bookkeep/lending-service/library/internal/errs"
	"github.com/bookkeep/lending-service/library/internal/model"
)

const msgDuplicateISBN = "A book with this ISBN already exists"

// AddBook validates and catalogs a new book. Validation short-circuits in
// order: title, author, isbn, copies, uniqueness, insert.
func (s *Service) AddBook(ctx context.Context, req model.AddBookRequest) model.OpResult {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fail("Title is required")
	}
	if utf8.RuneCountInString(title) >= 200 {
		return fail("Title must be less than 200 characters.")
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		return fail("Author is required")
	}
	if utf8.RuneCountInString(author) >= 100 {
		return fail("Author must be less than 100 characters")
	}

	if !validISBN(req.ISBN) {
		return fail("ISBN must be exactly 13 digits")
	}

	if req.TotalCopies <= 0 {
		return fail("Total copies must be a positive integer")
	}

	if _, err := s.repo.GetBookByISBN(ctx, req.ISBN); err == nil {
		return fail(msgDuplicateISBN)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return fail("Database error occurred while adding the book")
	}

	book := model.Book{
		Title:           title,
		Author:          author,
		ISBN:            req.ISBN,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
	}
	if _, err := s.repo.InsertBook(ctx, book); err != nil {
		if errors.Is(err, errs.ErrDuplicateISBN) {
			return fail(msgDuplicateISBN)
		}
		return fail("Database error occurred while adding the book")
	}

	return ok(fmt.Sprintf("Book %q successfully added to the catalog", title))
}

// SearchBooks dispatches on the search field. Title and author match
// case-insensitive substrings; isbn is trimmed and matched exactly. An
// unrecognized field yields an empty result, not an error.
func (s *Service) SearchBooks(ctx context.Context, term string, field model.SearchField) ([]model.Book, error) {
	switch field {
	case model.FieldTitle:
		return s.repo.SearchBooksByTitle(ctx, term)
	case model.FieldAuthor:
		return s.repo.SearchBooksByAuthor(ctx, term)
	case model.FieldISBN:
		book, err := s.repo.GetBookByISBN(ctx, strings.TrimSpace(term))
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return []model.Book{}, nil
			}
			return nil, err
		}
		return []model.Book{book}, nil
	default:
		return []model.Book{}, nil
	}
}

func ok(msg string) model.OpResult {
	return model.OpResult{Success: true, Message: msg}
}

func fail(msg string) model.OpResult {
	return model.OpResult{Success: false, Message: msg}
}
