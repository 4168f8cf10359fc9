// Package server implements the HTTP server and routing logic.
package server

import (
	"net/http"

	"github.com/maruel/bookdb/internal/server/dto"
	"github.com/maruel/bookdb/internal/server/handlers"
	"github.com/maruel/bookdb/internal/server/ipgeo"
	"github.com/maruel/bookdb/internal/server/ratelimit"
	"github.com/maruel/bookdb/internal/storage"
)

// Config holds the server configuration.
type Config struct {
	ServerConfig *storage.ServerConfig
	DataDir      string
	Version      string
	GoVersion    string
	Revision     string
	Dirty        bool
	IPGeo        *ipgeo.Checker // may be nil
}

//go:generate go run ../apiroutes -q

// NewRouter creates and configures the HTTP router.
func NewRouter(svc *handlers.Services, cfg *Config) http.Handler {
	hcfg := &handlers.Config{
		Version:   cfg.Version,
		GoVersion: cfg.GoVersion,
		Revision:  cfg.Revision,
		Dirty:     cfg.Dirty,
		Quotas:    cfg.ServerConfig.Quotas,
	}
	limiters := ratelimit.NewLimiters(cfg.ServerConfig.RateLimits)

	bh := handlers.NewBookHandler(svc.Books)
	hh := handlers.NewHealthHandler(hcfg)
	sh := handlers.NewSchemaHandler(svc.Books)

	mux := &http.ServeMux{}

	// Book endpoints
	mux.Handle("GET /books", Wrap(bh.ListBooks, hcfg, limiters))
	mux.Handle("GET /books/{id}", Wrap(bh.GetBook, hcfg, limiters))
	mux.Handle("POST /books", WrapCreated(bh.CreateBook, hcfg, limiters))
	mux.Handle("PUT /books/{id}", Wrap(bh.UpdateBook, hcfg, limiters))
	mux.Handle("DELETE /books/{id}", WrapNoContent(bh.DeleteBook, hcfg, limiters))

	// Introspection endpoints
	mux.Handle("GET /health", Wrap(hh.Health, hcfg, limiters))
	mux.Handle("GET /schema", Wrap(sh.GetSchema, hcfg, limiters))

	// Unknown routes get a JSON 404 instead of the stdlib text response.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeErrorResponseWithCode(w, http.StatusNotFound, dto.ErrorCodeNotFound, "route not found", nil)
	})

	return logRequests(mux, cfg.IPGeo)
}
