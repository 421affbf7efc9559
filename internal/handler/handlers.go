package handler

import (
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/handler/http"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.ServerServices, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg.Server.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
