package library

import "errors"

// Shared error constants for the book service.
var (
	// ErrBookNotFound is returned when no book has the requested ID.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookQuotaExceeded is returned when creating a book would exceed the
	// server's MaxBooks quota.
	ErrBookQuotaExceeded = errors.New("book quota exceeded")

	errBookIDRequired = errors.New("id is required")
	errTitleRequired  = errors.New("title is required")
	errAuthorRequired = errors.New("author is required")
	errYearNegative   = errors.New("year must be non-negative")
)
