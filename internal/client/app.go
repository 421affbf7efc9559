// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/crypto"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/packager"
	"github.com/MKhiriev/go-safe-share/internal/service"
	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/MKhiriev/go-safe-share/internal/utils"
)

// LoggerRole is the role label stamped on client log entries.
const LoggerRole = "safeshare"

// App is the wired client runtime a single command works with.
type App struct {
	Services *service.Services
	OwnerID  string
	Keys     config.Keys

	logger  *logger.Logger
	closers []func() error
}

// NewApp opens the stores selected by cfg and wires the client services.
// The caller must Close the returned App.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	ownerID, err := resolveOwnerID(cfg.App)
	if err != nil {
		return nil, err
	}

	metadata, err := store.NewMetadataStore(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("create metadata store: %w", err)
	}

	blobs, err := blob.NewBlobStore(ctx, cfg.Storage.Blob, cfg.Adapter, cfg.App.Token, log)
	if err != nil {
		_ = metadata.Close()
		return nil, fmt.Errorf("create blob store: %w", err)
	}

	p := packager.NewFilePackager(crypto.NewCryptoContext(), packager.WithFormat(cfg.App.BundleFormat))

	return &App{
		Services: service.NewServices(p, blobs, metadata, cfg.Workers, log),
		OwnerID:  ownerID,
		Keys:     cfg.Keys,
		logger:   log,
		closers:  []func() error{metadata.Close},
	}, nil
}

// Close releases the stores opened by NewApp.
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Logger returns the application logger, never nil.
func (a *App) Logger() *logger.Logger {
	if a.logger == nil {
		return logger.Nop()
	}
	return a.logger
}

// resolveOwnerID prefers an explicit user id and falls back to the token
// subject.
func resolveOwnerID(cfg config.ClientApp) (string, error) {
	if cfg.UserID != "" {
		return cfg.UserID, nil
	}
	if cfg.Token == "" {
		return "", ErrNoOwnerID
	}

	userID, err := utils.ParseUserIDFromJWT(cfg.Token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoOwnerID, err)
	}
	return userID, nil
}

// loadApp builds the client configuration from flags, the environment and
// the config file, then opens the App.
func loadApp(ctx context.Context, flags globalFlags) (*App, error) {
	cfg, err := config.GetClientConfig(flags.configPath, flags.overrides())
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger(LoggerRole, cfg.App.LogFile, cfg.App.LogLevel)
	log.Debug().
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("blob_backend", cfg.Storage.Blob.Backend).
		Int("bundle_format", cfg.App.BundleFormat).
		Msg("client config loaded")

	return NewApp(ctx, cfg, log)
}
