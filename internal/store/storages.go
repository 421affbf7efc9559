// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/validators"
)

// MetadataStore groups the file and folder repositories that share one
// database connection.
type MetadataStore struct {
	FileRepository   FileRepository
	FolderRepository FolderRepository

	db *DB
}

// NewMetadataStore connects to the database selected by cfg, applies
// pending migrations and wires the repositories.
func NewMetadataStore(ctx context.Context, cfg config.DB, log *logger.Logger) (*MetadataStore, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating metadata store...")

	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewMetadataStoreFromDB(db, log), nil
}

// NewMetadataStoreFromDB wires the repositories over an open, migrated
// connection.
func NewMetadataStoreFromDB(db *DB, log *logger.Logger) *MetadataStore {
	v := validators.NewRecordValidator()
	return &MetadataStore{
		FileRepository:   NewFileRepository(db, v, log),
		FolderRepository: NewFolderRepository(db, v, log),
		db:               db,
	}
}

// Close releases the underlying connection pool.
func (s *MetadataStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
