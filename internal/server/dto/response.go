package dto

// --- Book Responses ---

// BookResponse is the JSON shape of a single book.
type BookResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int64  `json:"year"`
}

// ListBooksResponse is the full catalog serialized as a bare JSON array in
// insertion order.
type ListBooksResponse []BookResponse

// --- Server Responses ---

// HealthResponse reports server health and build information.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"revision"`
	Dirty     bool   `json:"dirty"`
}

// ColumnResponse describes one column of the book table schema.
type ColumnResponse struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required,omitempty"`
	Description string `json:"description,omitempty"`
}

// GetSchemaResponse lists the columns of the book table.
type GetSchemaResponse struct {
	Columns []ColumnResponse `json:"columns"`
}
