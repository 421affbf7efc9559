// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-safe-share/internal/adapter"
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
)

// NewBlobStore creates the BlobStore selected by cfg.Backend. adapterCfg
// and token are only used by the http backend.
func NewBlobStore(ctx context.Context, cfg config.Blob, adapterCfg config.Adapter, token string, log *logger.Logger) (BlobStore, error) {
	switch cfg.Backend {
	case config.BlobBackendMemory:
		return NewMemoryStore(), nil
	case config.BlobBackendFilesystem:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("filesystem blob backend requires a directory")
		}
		return NewFileSystemStore(cfg.Dir)
	case config.BlobBackendS3:
		return NewS3Store(ctx, cfg.S3)
	case config.BlobBackendHTTP:
		a, err := adapter.NewHTTPBlobAdapter(adapterCfg, token, log)
		if err != nil {
			return nil, err
		}
		return NewHTTPStore(a), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStore, cfg.Backend)
	}
}
