// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/validators"
	"github.com/MKhiriev/go-safe-share/models"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a Postgres flavoured DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

// newSQLiteStore opens a migrated in-memory database on the pure Go driver.
func newSQLiteStore(t *testing.T) *MetadataStore {
	t.Helper()

	s, err := NewMetadataStore(context.Background(), config.DB{
		Driver: config.DriverSQLitePure,
		DSN:    ":memory:",
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newTestFileRepo(t *testing.T) (FileRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewFileRepository(db, validators.NewRecordValidator(), logger.Nop()), mock
}

func newTestFolderRepo(t *testing.T) (FolderRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewFolderRepository(db, validators.NewRecordValidator(), logger.Nop()), mock
}

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

func sampleFile(id, owner, folder, name string) models.FileRecord {
	return models.FileRecord{
		ID:             id,
		OwnerID:        owner,
		FolderID:       folder,
		Name:           name,
		MimeType:       "text/plain",
		PlaintextSize:  5,
		CiphertextSize: 21,
		BlobURL:        "memory://files/" + owner + "/" + id,
		Nonce:          []byte("123456789012"),
		RawKey:         []byte("0123456789abcdef0123456789abcdef"),
		FormatVersion:  models.BundleFormatV2,
		SchemaVersion:  models.CurrentSchemaVersion,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
	}
}

func sampleFolder(id, owner, parent, name string) models.FolderRecord {
	return models.FolderRecord{
		ID:            id,
		OwnerID:       owner,
		ParentID:      parent,
		Name:          name,
		Path:          "/" + name,
		SchemaVersion: models.CurrentSchemaVersion,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}
}
