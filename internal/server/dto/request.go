package dto

// --- Books ---

// ListBooksRequest is a request to list all books.
type ListBooksRequest struct{}

// Validate is a no-op for ListBooksRequest.
func (r *ListBooksRequest) Validate() error {
	return nil
}

// GetBookRequest is a request to get a book.
type GetBookRequest struct {
	ID int64 `path:"id"`
}

// Validate is a no-op for GetBookRequest.
func (r *GetBookRequest) Validate() error {
	return nil
}

// CreateBookRequest is a request to create a book.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	// Year is a pointer so a missing field can be told apart from year 0.
	Year *int64 `json:"year"`
}

// Validate validates the create book request fields.
func (r *CreateBookRequest) Validate() error {
	if r.Title == "" {
		return MissingField("title")
	}
	if r.Author == "" {
		return MissingField("author")
	}
	if r.Year == nil {
		return MissingField("year")
	}
	if *r.Year < 0 {
		return InvalidField("year", "must be non-negative")
	}
	return nil
}

// UpdateBookRequest is a request to replace all fields of a book.
type UpdateBookRequest struct {
	ID     int64  `path:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	// Year is a pointer so a missing field can be told apart from year 0.
	Year *int64 `json:"year"`
}

// Validate validates the update book request fields.
func (r *UpdateBookRequest) Validate() error {
	if r.Title == "" {
		return MissingField("title")
	}
	if r.Author == "" {
		return MissingField("author")
	}
	if r.Year == nil {
		return MissingField("year")
	}
	if *r.Year < 0 {
		return InvalidField("year", "must be non-negative")
	}
	return nil
}

// DeleteBookRequest is a request to delete a book.
type DeleteBookRequest struct {
	ID int64 `path:"id"`
}

// Validate is a no-op for DeleteBookRequest.
func (r *DeleteBookRequest) Validate() error {
	return nil
}

// --- Server ---

// HealthRequest is a request for the health endpoint.
type HealthRequest struct{}

// Validate is a no-op for HealthRequest.
func (r *HealthRequest) Validate() error {
	return nil
}

// GetSchemaRequest is a request for the book table schema.
type GetSchemaRequest struct{}

// Validate is a no-op for GetSchemaRequest.
func (r *GetSchemaRequest) Validate() error {
	return nil
}
