// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/MKhiriev/go-safe-share/models"
)

// Records owned by someone else are reported exactly like missing ones.

func getOwnedFile(ctx context.Context, files store.FileRepository, ownerID, fileID string) (models.FileRecord, error) {
	record, err := files.GetFile(ctx, fileID)
	if err != nil {
		return models.FileRecord{}, err
	}
	if record.OwnerID != ownerID {
		return models.FileRecord{}, fmt.Errorf("%w: file %s", store.ErrRecordNotFound, fileID)
	}
	return record, nil
}

func getOwnedFolder(ctx context.Context, folders store.FolderRepository, ownerID, folderID string) (models.FolderRecord, error) {
	record, err := folders.GetFolder(ctx, folderID)
	if err != nil {
		return models.FolderRecord{}, err
	}
	if record.OwnerID != ownerID {
		return models.FolderRecord{}, fmt.Errorf("%w: folder %s", store.ErrRecordNotFound, folderID)
	}
	return record, nil
}

// checkFolder verifies that folderID exists for ownerID. The root folder
// always exists.
func checkFolder(ctx context.Context, folders store.FolderRepository, ownerID, folderID string) error {
	if folderID == models.RootFolderID {
		return nil
	}
	_, err := getOwnedFolder(ctx, folders, ownerID, folderID)
	return err
}
