package handlers

import (
	"context"

	"github.com/maruel/bookdb/internal/server/dto"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	cfg *Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg *Config) *HealthHandler {
	return &HealthHandler{
		cfg: cfg,
	}
}

// Health handles health check requests.
func (h *HealthHandler) Health(ctx context.Context, req *dto.HealthRequest) (*dto.HealthResponse, error) {
	return &dto.HealthResponse{
		Status:    "ok",
		Version:   h.cfg.Version,
		GoVersion: h.cfg.GoVersion,
		Revision:  h.cfg.Revision,
		Dirty:     h.cfg.Dirty,
	}, nil
}
