package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/handler"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/server"
	"github.com/MKhiriev/go-safe-share/internal/service"
	"github.com/MKhiriev/go-safe-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("blob-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("blob_backend", cfg.Storage.Blob.Backend).
		Msg("received configs")

	blobs, err := blob.NewBlobStore(context.Background(), cfg.Storage.Blob, cfg.Adapter, "", log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	locatable, ok := blobs.(service.LocatableBlobStore)
	if !ok {
		log.Fatal().Str("blob_backend", cfg.Storage.Blob.Backend).Msg("blob backend cannot be served")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}
	services, err := service.NewServerServices(locatable, models.NewAppBuildInfo(cfg.App.Version, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
