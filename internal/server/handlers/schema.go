package handlers

import (
	"context"

	"github.com/maruel/bookdb/internal/server/dto"
	"github.com/maruel/bookdb/internal/storage/library"
)

// SchemaHandler handles book table schema requests.
type SchemaHandler struct {
	bookService *library.BookService
}

// NewSchemaHandler creates a new schema handler.
func NewSchemaHandler(bookService *library.BookService) *SchemaHandler {
	return &SchemaHandler{
		bookService: bookService,
	}
}

// GetSchema returns the column layout of the book table.
func (h *SchemaHandler) GetSchema(ctx context.Context, req *dto.GetSchemaRequest) (*dto.GetSchemaResponse, error) {
	cols, err := h.bookService.Schema()
	if err != nil {
		return nil, dto.InternalWithError("Failed to reflect schema", err)
	}
	return &dto.GetSchemaResponse{Columns: columnsToResponse(cols)}, nil
}
