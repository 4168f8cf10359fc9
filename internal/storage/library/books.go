// Package library provides the book catalog service.
//
// Books live in a single JSON-array table (books.json) managed by the
// jsondb package: loaded once at startup, held in memory, and rewritten
// in full on every mutation.
package library

import (
	"github.com/maruel/bookdb/internal/jsondb"
	"github.com/maruel/bookdb/internal/storage"
)

// Book represents one book in the catalog (persistent fields only).
type Book struct {
	ID     jsondb.ID `json:"id" jsonschema:"description=Unique book identifier"`
	Title  string    `json:"title" jsonschema:"description=Book title"`
	Author string    `json:"author" jsonschema:"description=Book author"`
	Year   int64     `json:"year" jsonschema:"description=Year of publication"`
}

// GetID returns the Book's ID.
func (b *Book) GetID() jsondb.ID {
	return b.ID
}

// BookService handles book catalog management.
type BookService struct {
	table  *jsondb.Table[*bookStorage]
	quotas storage.ServerQuotas
}

// NewBookService creates a new book service.
func NewBookService(tablePath string, quotas storage.ServerQuotas) (*BookService, error) {
	table, err := jsondb.NewTable[*bookStorage](tablePath)
	if err != nil {
		return nil, err
	}
	return &BookService{table: table, quotas: quotas}, nil
}

// List returns all books in insertion order.
func (s *BookService) List() []*Book {
	books := make([]*Book, 0, s.table.Len())
	for stored := range s.table.All() {
		book := stored.Book
		books = append(books, &book)
	}
	return books
}

// Get retrieves a book by ID.
func (s *BookService) Get(id jsondb.ID) (*Book, error) {
	stored := s.table.Get(id)
	if stored == nil {
		return nil, ErrBookNotFound
	}
	book := stored.Book
	return &book, nil
}

// Create adds a new book. The table assigns the next sequential ID.
func (s *BookService) Create(title, author string, year int64) (*Book, error) {
	if title == "" {
		return nil, errTitleRequired
	}
	if author == "" {
		return nil, errAuthorRequired
	}
	if year < 0 {
		return nil, errYearNegative
	}
	if s.quotas.MaxBooks > 0 && s.table.Len() >= s.quotas.MaxBooks {
		return nil, ErrBookQuotaExceeded
	}
	stored := &bookStorage{Book: Book{Title: title, Author: author, Year: year}}
	if err := s.table.Append(stored); err != nil {
		return nil, err
	}
	book := stored.Book
	return &book, nil
}

// Update replaces all fields of an existing book.
func (s *BookService) Update(id jsondb.ID, title, author string, year int64) (*Book, error) {
	if title == "" {
		return nil, errTitleRequired
	}
	if author == "" {
		return nil, errAuthorRequired
	}
	if year < 0 {
		return nil, errYearNegative
	}
	stored := &bookStorage{Book: Book{ID: id, Title: title, Author: author, Year: year}}
	prev, err := s.table.Update(stored)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, ErrBookNotFound
	}
	book := stored.Book
	return &book, nil
}

// Delete removes a book by ID.
func (s *BookService) Delete(id jsondb.ID) error {
	deleted, err := s.table.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}
	return nil
}

// Len returns the number of books in the catalog.
func (s *BookService) Len() int {
	return s.table.Len()
}

// Schema returns the column definitions of the book table.
func (s *BookService) Schema() ([]jsondb.Column, error) {
	return jsondb.Columns[Book]()
}

//

type bookStorage struct {
	Book
}

func (b *bookStorage) Clone() *bookStorage {
	c := *b
	return &c
}

// GetID returns the bookStorage's ID.
func (b *bookStorage) GetID() jsondb.ID {
	return b.ID
}

// SetID sets the bookStorage's ID. Called by the table on append.
func (b *bookStorage) SetID(id jsondb.ID) {
	b.ID = id
}

// Validate checks that the bookStorage is valid.
func (b *bookStorage) Validate() error {
	if b.ID.IsZero() {
		return errBookIDRequired
	}
	if b.Title == "" {
		return errTitleRequired
	}
	if b.Author == "" {
		return errAuthorRequired
	}
	if b.Year < 0 {
		return errYearNegative
	}
	return nil
}
