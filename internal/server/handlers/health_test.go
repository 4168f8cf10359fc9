package handlers

import (
	"testing"

	"github.com/maruel/bookdb/internal/server/dto"
)

func TestNewHealthHandler(t *testing.T) {
	handler := NewHealthHandler(&Config{Version: "1.0.0"})
	if handler == nil {
		t.Fatal("NewHealthHandler returned nil")
	}
	if handler.cfg.Version != "1.0.0" {
		t.Errorf("version = %q, want %q", handler.cfg.Version, "1.0.0")
	}
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		cfg            Config
		expectedStatus string
	}{
		{
			name:           "basic health check",
			cfg:            Config{Version: "1.0.0", GoVersion: "go1.25.5", Revision: "abc1234", Dirty: false},
			expectedStatus: "ok",
		},
		{
			name:           "dev version",
			cfg:            Config{Version: "dev", GoVersion: "go1.25.5", Revision: "", Dirty: true},
			expectedStatus: "ok",
		},
		{
			name:           "empty version",
			cfg:            Config{},
			expectedStatus: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(&tt.cfg)
			resp, err := handler.Health(t.Context(), &dto.HealthRequest{})

			if err != nil {
				t.Fatalf("Health() error = %v", err)
			}
			if resp == nil {
				t.Fatal("Health() returned nil response")
			}
			if resp.Status != tt.expectedStatus {
				t.Errorf("Status = %q, want %q", resp.Status, tt.expectedStatus)
			}
			if resp.Version != tt.cfg.Version {
				t.Errorf("Version = %q, want %q", resp.Version, tt.cfg.Version)
			}
			if resp.GoVersion != tt.cfg.GoVersion {
				t.Errorf("GoVersion = %q, want %q", resp.GoVersion, tt.cfg.GoVersion)
			}
			if resp.Revision != tt.cfg.Revision {
				t.Errorf("Revision = %q, want %q", resp.Revision, tt.cfg.Revision)
			}
			if resp.Dirty != tt.cfg.Dirty {
				t.Errorf("Dirty = %v, want %v", resp.Dirty, tt.cfg.Dirty)
			}
		})
	}
}
