package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/handler"
	"github.com/MKhiriev/go-safe-share/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoBlobHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() error {
	return s.httpServer.shutdown()
}

// run serves until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("stop signal received, shutting down")
	if err := s.Shutdown(); err != nil {
		return err
	}
	if err := <-errCh; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
