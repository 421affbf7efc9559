// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/mock"
	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

type mocks struct {
	packager *mock.MockFilePackager
	blobs    *mock.MockBlobStore
	files    *mock.MockFileRepository
	folders  *mock.MockFolderRepository
}

func newMocks(ctrl *gomock.Controller) (*mocks, *store.MetadataStore) {
	m := &mocks{
		packager: mock.NewMockFilePackager(ctrl),
		blobs:    mock.NewMockBlobStore(ctrl),
		files:    mock.NewMockFileRepository(ctrl),
		folders:  mock.NewMockFolderRepository(ctrl),
	}
	return m, &store.MetadataStore{FileRepository: m.files, FolderRepository: m.folders}
}

// newSQLiteMetadata opens a migrated in-memory metadata store.
func newSQLiteMetadata(t *testing.T) *store.MetadataStore {
	t.Helper()

	s, err := store.NewMetadataStore(context.Background(), config.DB{
		Driver: config.DriverSQLitePure,
		DSN:    ":memory:",
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}
