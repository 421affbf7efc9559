// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/MKhiriev/go-safe-share/models"
)

type fileService struct {
	blobs   blob.BlobStore
	files   store.FileRepository
	folders store.FolderRepository

	logger *logger.Logger
}

// NewFileService returns a FileService over metadata and blobs.
func NewFileService(blobs blob.BlobStore, metadata *store.MetadataStore, logger *logger.Logger) FileService {
	return &fileService{
		blobs:   blobs,
		files:   metadata.FileRepository,
		folders: metadata.FolderRepository,
		logger:  logger,
	}
}

func (s *fileService) List(ctx context.Context, ownerID, folderID string) ([]models.FileRecord, error) {
	if folderID == "" {
		folderID = models.RootFolderID
	}
	if err := checkFolder(ctx, s.folders, ownerID, folderID); err != nil {
		return nil, fmt.Errorf("get folder: %w", err)
	}

	files, err := s.files.QueryFiles(ctx, models.FileFilter{OwnerID: ownerID, FolderID: folderID}, models.OrderByName)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

func (s *fileService) Get(ctx context.Context, ownerID, fileID string) (models.FileRecord, error) {
	record, err := getOwnedFile(ctx, s.files, ownerID, fileID)
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("get file record: %w", err)
	}
	return record, nil
}

// Delete removes the blob first and the record second. A blob that is
// already gone, or whose URL the configured backend cannot locate, does not
// block removing the record; any other blob failure leaves the record
// untouched so the delete can be retried.
func (s *fileService) Delete(ctx context.Context, ownerID, fileID string) error {
	record, err := getOwnedFile(ctx, s.files, ownerID, fileID)
	if err != nil {
		return fmt.Errorf("get file record: %w", err)
	}

	if err = s.blobs.Delete(ctx, record.BlobURL); err != nil {
		switch {
		case errors.Is(err, blob.ErrBlobNotFound):
			s.logger.Warn().Str("file_id", fileID).Msg("blob already missing, removing record")
		case errors.Is(err, blob.ErrInvalidBlobURL):
			s.logger.Warn().Err(err).Str("file_id", fileID).Str("blob_url", record.BlobURL).
				Msg("blob url not served by the configured backend, removing record")
		default:
			return fmt.Errorf("delete blob: %w", err)
		}
	}

	if err = s.files.DeleteFile(ctx, fileID); err != nil {
		return fmt.Errorf("delete file record: %w", err)
	}

	s.logger.Info().Str("file_id", fileID).Msg("file deleted")
	return nil
}
