// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validateServer checks the settings the blob server needs at startup.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxBlobSize <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.Blob.Backend == BlobBackendHTTP {
		return fmt.Errorf("%w: blob server cannot use the http backend", ErrInvalidStorageConfigs)
	}

	return validateBlob(cfg.Storage.Blob, cfg.Adapter)
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverSQLitePure, DriverPostgres:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if err := validateBlob(cfg.Storage.Blob, cfg.Adapter); err != nil {
		return err
	}

	if cfg.Workers.UploadConcurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.UserID == "" && cfg.App.Token == "" {
		return fmt.Errorf("%w: user id or token is required", ErrInvalidAppConfigs)
	}

	if cfg.App.BundleFormat != 1 && cfg.App.BundleFormat != 2 {
		return fmt.Errorf("%w: bundle format %d", ErrInvalidAppConfigs, cfg.App.BundleFormat)
	}

	return nil
}

func validateBlob(blob Blob, adapter Adapter) error {
	switch blob.Backend {
	case BlobBackendMemory:
		return nil
	case BlobBackendFilesystem:
		if blob.Dir == "" {
			return fmt.Errorf("%w: blob dir is empty", ErrInvalidStorageConfigs)
		}
	case BlobBackendS3:
		if blob.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 bucket is empty", ErrInvalidStorageConfigs)
		}
	case BlobBackendHTTP:
		if adapter.HTTPAddress == "" || adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
	default:
		return fmt.Errorf("%w: unknown blob backend %q", ErrInvalidStorageConfigs, blob.Backend)
	}

	return nil
}
