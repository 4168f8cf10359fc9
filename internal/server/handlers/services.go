// Defines shared service dependencies for handlers.

package handlers

import (
	"github.com/maruel/bookdb/internal/storage"
	"github.com/maruel/bookdb/internal/storage/library"
)

// Services holds all service dependencies for handlers.
type Services struct {
	Books *library.BookService
}

// Config holds configuration values needed by handlers.
type Config struct {
	Version   string
	GoVersion string
	Revision  string
	Dirty     bool
	Quotas    storage.ServerQuotas
}
