package http

import (
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/service"
)

// BlobsPath is the prefix of every blob route.
const BlobsPath = "/api/blobs"

type Handler struct {
	services *service.ServerServices
	metrics  *Metrics

	tokenSignKey string
	tokenIssuer  string
	maxBlobSize  int64

	logger *logger.Logger
}

func NewHandler(services *service.ServerServices, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		metrics:      NewMetrics(),
		tokenSignKey: cfg.App.TokenSignKey,
		tokenIssuer:  cfg.App.TokenIssuer,
		maxBlobSize:  cfg.Server.MaxBlobSize,
		logger:       logger,
	}
}
