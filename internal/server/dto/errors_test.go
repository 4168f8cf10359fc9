package dto

import (
	"errors"
	"net/http"
	"testing"
)

func TestAPIError(t *testing.T) {
	t.Run("NewAPIError", func(t *testing.T) {
		err := NewAPIError(http.StatusNotFound, ErrorCodeNotFound, "resource not found")
		if err.StatusCode() != http.StatusNotFound {
			t.Errorf("Expected status code %d, got %d", http.StatusNotFound, err.StatusCode())
		}
		if err.Code() != ErrorCodeNotFound {
			t.Errorf("Expected code %s, got %s", ErrorCodeNotFound, err.Code())
		}
		if err.Error() != "resource not found" {
			t.Errorf("Expected message 'resource not found', got '%s'", err.Error())
		}
		if err.Details() == nil {
			t.Error("Expected Details() to return non-nil map")
		}
	})
	t.Run("WithDetails", func(t *testing.T) {
		t.Run("adds details", func(t *testing.T) {
			err := NewAPIError(http.StatusBadRequest, ErrorCodeValidationFailed, "validation failed").
				WithDetails(map[string]any{"field": "title", "reason": "invalid format"})
			if err.Details()["field"] != "title" {
				t.Errorf("Expected field 'title', got %v", err.Details()["field"])
			}
			if err.Details()["reason"] != "invalid format" {
				t.Errorf("Expected reason 'invalid format', got %v", err.Details()["reason"])
			}
		})
		t.Run("initializes nil map", func(t *testing.T) {
			err := (&APIError{
				statusCode: http.StatusBadRequest,
				code:       ErrorCodeValidationFailed,
				message:    "test",
				details:    nil,
			}).WithDetails(map[string]any{"key": "value"})
			if err.Details()["key"] != "value" {
				t.Error("Expected WithDetails to initialize nil map")
			}
		})
	})
	t.Run("WithDetail", func(t *testing.T) {
		t.Run("adds single detail", func(t *testing.T) {
			err := NewAPIError(http.StatusBadRequest, ErrorCodeValidationFailed, "validation failed").
				WithDetail("field", "author")
			if err.Details()["field"] != "author" {
				t.Errorf("Expected field 'author', got %v", err.Details()["field"])
			}
		})
		t.Run("initializes nil map", func(t *testing.T) {
			err := (&APIError{
				statusCode: http.StatusBadRequest,
				code:       ErrorCodeValidationFailed,
				message:    "test",
				details:    nil,
			}).WithDetail("key", "value")
			if err.Details()["key"] != "value" {
				t.Error("Expected WithDetail to initialize nil map")
			}
		})
	})
	t.Run("Wrap", func(t *testing.T) {
		origErr := errors.New("original error")
		err := NewAPIError(http.StatusInternalServerError, ErrorCodeInternal, "wrapped error").Wrap(origErr)
		if err.Unwrap() != origErr {
			t.Error("Expected Unwrap() to return the original error")
		}
		if err.Error() != "wrapped error: original error" {
			t.Errorf("Expected error message 'wrapped error: original error', got '%s'", err.Error())
		}
	})
}

func TestErrorConstructors(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		err := NotFound("book")
		if err.StatusCode() != http.StatusNotFound {
			t.Errorf("Expected status code %d, got %d", http.StatusNotFound, err.StatusCode())
		}
		if err.Code() != ErrorCodeNotFound {
			t.Errorf("Expected code %s, got %s", ErrorCodeNotFound, err.Code())
		}
		if err.Error() != "book not found" {
			t.Errorf("Expected message 'book not found', got '%s'", err.Error())
		}
	})
	t.Run("BadRequest", func(t *testing.T) {
		err := BadRequest("invalid input")
		if err.StatusCode() != http.StatusBadRequest {
			t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, err.StatusCode())
		}
		if err.Code() != ErrorCodeValidationFailed {
			t.Errorf("Expected code %s, got %s", ErrorCodeValidationFailed, err.Code())
		}
		if err.Error() != "invalid input" {
			t.Errorf("Expected message 'invalid input', got '%s'", err.Error())
		}
	})
	t.Run("MissingField", func(t *testing.T) {
		err := MissingField("title")
		if err.StatusCode() != http.StatusUnprocessableEntity {
			t.Errorf("Expected status code %d, got %d", http.StatusUnprocessableEntity, err.StatusCode())
		}
		if err.Code() != ErrorCodeMissingField {
			t.Errorf("Expected code %s, got %s", ErrorCodeMissingField, err.Code())
		}
		if err.Error() != "Missing required field: title" {
			t.Errorf("Expected message 'Missing required field: title', got '%s'", err.Error())
		}
		if err.Details()["field"] != "title" {
			t.Errorf("Expected field detail 'title', got %v", err.Details()["field"])
		}
	})
	t.Run("InvalidField", func(t *testing.T) {
		err := InvalidField("year", "must be non-negative")
		if err.StatusCode() != http.StatusUnprocessableEntity {
			t.Errorf("Expected status code %d, got %d", http.StatusUnprocessableEntity, err.StatusCode())
		}
		if err.Code() != ErrorCodeInvalidFormat {
			t.Errorf("Expected code %s, got %s", ErrorCodeInvalidFormat, err.Code())
		}
		if err.Error() != "Invalid field year: must be non-negative" {
			t.Errorf("Expected message 'Invalid field year: must be non-negative', got '%s'", err.Error())
		}
		if err.Details()["field"] != "year" {
			t.Errorf("Expected field detail 'year', got %v", err.Details()["field"])
		}
	})
	t.Run("QuotaExceeded", func(t *testing.T) {
		err := QuotaExceeded("book")
		if err.StatusCode() != http.StatusForbidden {
			t.Errorf("Expected status code %d, got %d", http.StatusForbidden, err.StatusCode())
		}
		if err.Code() != ErrorCodeQuotaExceeded {
			t.Errorf("Expected code %s, got %s", ErrorCodeQuotaExceeded, err.Code())
		}
		if err.Error() != "book quota exceeded" {
			t.Errorf("Expected message 'book quota exceeded', got '%s'", err.Error())
		}
	})
	t.Run("PayloadTooLarge", func(t *testing.T) {
		err := PayloadTooLarge(1024)
		if err.StatusCode() != http.StatusRequestEntityTooLarge {
			t.Errorf("Expected status code %d, got %d", http.StatusRequestEntityTooLarge, err.StatusCode())
		}
		if err.Code() != ErrorCodePayloadTooLarge {
			t.Errorf("Expected code %s, got %s", ErrorCodePayloadTooLarge, err.Code())
		}
		if err.Details()["limit_bytes"] != int64(1024) {
			t.Errorf("Expected limit_bytes detail 1024, got %v", err.Details()["limit_bytes"])
		}
	})
	t.Run("RateLimitExceeded", func(t *testing.T) {
		err := RateLimitExceeded(30)
		if err.StatusCode() != http.StatusTooManyRequests {
			t.Errorf("Expected status code %d, got %d", http.StatusTooManyRequests, err.StatusCode())
		}
		if err.Code() != ErrorCodeRateLimited {
			t.Errorf("Expected code %s, got %s", ErrorCodeRateLimited, err.Code())
		}
		if err.Details()["retry_after_seconds"] != 30 {
			t.Errorf("Expected retry_after_seconds detail 30, got %v", err.Details()["retry_after_seconds"])
		}
	})
	t.Run("Internal", func(t *testing.T) {
		err := Internal("server error")
		if err.StatusCode() != http.StatusInternalServerError {
			t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, err.StatusCode())
		}
		if err.Code() != ErrorCodeInternal {
			t.Errorf("Expected code %s, got %s", ErrorCodeInternal, err.Code())
		}
	})
	t.Run("InternalWithError", func(t *testing.T) {
		origErr := errors.New("disk write failed")
		err := InternalWithError("failed to save book", origErr)
		if err.StatusCode() != http.StatusInternalServerError {
			t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, err.StatusCode())
		}
		if err.Unwrap() != origErr {
			t.Error("Expected InternalWithError to wrap the original error")
		}
	})
}
