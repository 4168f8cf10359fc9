// Package handlers provides HTTP request handlers for the REST API.
package handlers

import (
	"context"
	"errors"

	"github.com/maruel/bookdb/internal/jsondb"
	"github.com/maruel/bookdb/internal/server/dto"
	"github.com/maruel/bookdb/internal/storage/library"
)

// BookHandler handles book catalog requests.
type BookHandler struct {
	bookService *library.BookService
}

// NewBookHandler creates a new book handler.
func NewBookHandler(bookService *library.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// ListBooks returns all books in the catalog, in insertion order.
func (h *BookHandler) ListBooks(ctx context.Context, req *dto.ListBooksRequest) (*dto.ListBooksResponse, error) {
	books := h.bookService.List()
	resp := make(dto.ListBooksResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, *bookToResponse(b))
	}
	return &resp, nil
}

// GetBook returns a single book by ID.
func (h *BookHandler) GetBook(ctx context.Context, req *dto.GetBookRequest) (*dto.BookResponse, error) {
	book, err := h.bookService.Get(jsondb.ID(req.ID))
	if err != nil {
		if errors.Is(err, library.ErrBookNotFound) {
			return nil, dto.NotFound("book")
		}
		return nil, dto.InternalWithError("Failed to get book", err)
	}
	return bookToResponse(book), nil
}

// CreateBook adds a new book to the catalog.
func (h *BookHandler) CreateBook(ctx context.Context, req *dto.CreateBookRequest) (*dto.BookResponse, error) {
	book, err := h.bookService.Create(req.Title, req.Author, *req.Year)
	if err != nil {
		if errors.Is(err, library.ErrBookQuotaExceeded) {
			return nil, dto.QuotaExceeded("book")
		}
		return nil, dto.InternalWithError("Failed to create book", err)
	}
	return bookToResponse(book), nil
}

// UpdateBook replaces every field of an existing book.
func (h *BookHandler) UpdateBook(ctx context.Context, req *dto.UpdateBookRequest) (*dto.BookResponse, error) {
	book, err := h.bookService.Update(jsondb.ID(req.ID), req.Title, req.Author, *req.Year)
	if err != nil {
		if errors.Is(err, library.ErrBookNotFound) {
			return nil, dto.NotFound("book")
		}
		return nil, dto.InternalWithError("Failed to update book", err)
	}
	return bookToResponse(book), nil
}

// DeleteBook removes a book from the catalog.
func (h *BookHandler) DeleteBook(ctx context.Context, req *dto.DeleteBookRequest) error {
	if err := h.bookService.Delete(jsondb.ID(req.ID)); err != nil {
		if errors.Is(err, library.ErrBookNotFound) {
			return dto.NotFound("book")
		}
		return dto.InternalWithError("Failed to delete book", err)
	}
	return nil
}
