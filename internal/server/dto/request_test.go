package dto

import (
	"errors"
	"testing"
)

func yearPtr(v int64) *int64 { return &v }

func TestCreateBookRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		req      CreateBookRequest
		wantCode ErrorCode
	}{
		{"valid", CreateBookRequest{Title: "Dune", Author: "Frank Herbert", Year: yearPtr(1965)}, ""},
		{"zero year", CreateBookRequest{Title: "Epic of Gilgamesh", Author: "Unknown", Year: yearPtr(0)}, ""},
		{"missing title", CreateBookRequest{Author: "Frank Herbert", Year: yearPtr(1965)}, ErrorCodeMissingField},
		{"missing author", CreateBookRequest{Title: "Dune", Year: yearPtr(1965)}, ErrorCodeMissingField},
		{"missing year", CreateBookRequest{Title: "Dune", Author: "Frank Herbert"}, ErrorCodeMissingField},
		{"negative year", CreateBookRequest{Title: "Dune", Author: "Frank Herbert", Year: yearPtr(-1)}, ErrorCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Validate() = %v, want *APIError", err)
			}
			if apiErr.Code() != tt.wantCode {
				t.Errorf("Code() = %s, want %s", apiErr.Code(), tt.wantCode)
			}
		})
	}
}

func TestUpdateBookRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		req      UpdateBookRequest
		wantCode ErrorCode
	}{
		{"valid", UpdateBookRequest{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: yearPtr(1965)}, ""},
		{"missing title", UpdateBookRequest{ID: 1, Author: "Frank Herbert", Year: yearPtr(1965)}, ErrorCodeMissingField},
		{"missing author", UpdateBookRequest{ID: 1, Title: "Dune", Year: yearPtr(1965)}, ErrorCodeMissingField},
		{"missing year", UpdateBookRequest{ID: 1, Title: "Dune", Author: "Frank Herbert"}, ErrorCodeMissingField},
		{"negative year", UpdateBookRequest{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: yearPtr(-1)}, ErrorCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Validate() = %v, want *APIError", err)
			}
			if apiErr.Code() != tt.wantCode {
				t.Errorf("Code() = %s, want %s", apiErr.Code(), tt.wantCode)
			}
		})
	}
}

func TestNoBodyRequestsValidate(t *testing.T) {
	reqs := []Validatable{
		&ListBooksRequest{},
		&GetBookRequest{ID: 1},
		&DeleteBookRequest{ID: 1},
		&HealthRequest{},
		&GetSchemaRequest{},
	}
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			t.Errorf("%T.Validate() = %v, want nil", req, err)
		}
	}
}
