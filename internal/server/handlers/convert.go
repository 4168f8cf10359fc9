package handlers

import (
	"github.com/maruel/bookdb/internal/jsondb"
	"github.com/maruel/bookdb/internal/server/dto"
	"github.com/maruel/bookdb/internal/storage/library"
)

// --- Entity to DTO conversions ---

func bookToResponse(b *library.Book) *dto.BookResponse {
	return &dto.BookResponse{
		ID:     int64(b.ID),
		Title:  b.Title,
		Author: b.Author,
		Year:   b.Year,
	}
}

func columnsToResponse(cols []jsondb.Column) []dto.ColumnResponse {
	out := make([]dto.ColumnResponse, len(cols))
	for i, c := range cols {
		out[i] = dto.ColumnResponse{
			Name:        c.Name,
			Type:        string(c.Type),
			Required:    c.Required,
			Description: c.Description,
		}
	}
	return out
}
