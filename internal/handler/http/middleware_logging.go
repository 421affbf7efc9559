package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access entry per request. Server errors are logged
// at error level and client errors at warn so that failed blob transfers
// stand out from routine traffic.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).WithLevel(accessLevel(status)).
			Str("uri", r.URL.Path).
			Str("method", r.Method).
			Int("status", status).
			Int64("bytes_in", r.ContentLength).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func accessLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
