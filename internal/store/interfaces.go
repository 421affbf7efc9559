// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-safe-share/models"
)

// FileRepository persists [models.FileRecord] values. Ownership is not
// checked here; callers compare OwnerID themselves.
type FileRepository interface {
	CreateFile(ctx context.Context, record models.FileRecord) error
	GetFile(ctx context.Context, id string) (models.FileRecord, error)
	DeleteFile(ctx context.Context, id string) error
	QueryFiles(ctx context.Context, filter models.FileFilter, order models.OrderBy) ([]models.FileRecord, error)
}

// FolderRepository persists [models.FolderRecord] values.
type FolderRepository interface {
	CreateFolder(ctx context.Context, record models.FolderRecord) error
	GetFolder(ctx context.Context, id string) (models.FolderRecord, error)
	UpdateFolder(ctx context.Context, record models.FolderRecord) error
	// DeleteFolder returns ErrFolderInUse when a subfolder or file still
	// references id.
	DeleteFolder(ctx context.Context, id string) error
	QueryFolders(ctx context.Context, filter models.FolderFilter, order models.OrderBy) ([]models.FolderRecord, error)
}
