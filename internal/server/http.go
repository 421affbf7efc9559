package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may finish.
const shutdownTimeout = 15 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer applies RequestTimeout to header reads and idle connections.
// Body reads and writes are not bounded here: blobs may be large and are
// capped by size instead.
func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: cfg.RequestTimeout,
			IdleTimeout:       2 * cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// serve blocks until the listener fails or Shutdown is called. A regular
// shutdown is not an error.
func (h *httpServer) serve() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("Launching HTTP server")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	}
	return nil
}

func (h *httpServer) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
