package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/maruel/bookdb/internal/server/ipgeo"
	"github.com/maruel/bookdb/internal/server/reqctx"
)

// statusRecorder captures the response status code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// logRequests logs one line per request with method, path, status and
// duration. When geo is non-nil the client country is resolved and logged.
func logRequests(next http.Handler, geo *ipgeo.Checker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		ip := reqctx.GetClientIP(r)
		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"dur", time.Since(start).Round(time.Millisecond),
			"ip", ip,
		}
		if geo != nil {
			if cc := geo.CountryCode(ip); cc != "" {
				attrs = append(attrs, "country", cc)
			}
		}
		slog.InfoContext(r.Context(), "http", attrs...)
	})
}
