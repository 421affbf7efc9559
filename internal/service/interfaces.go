// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the orchestration logic of go-safe-share.
//
// The client side chains FilePackager, BlobStore and MetadataStore into the
// upload and download pipelines and manages the folder tree. The server
// side exposes a BlobStore to authenticated owners. Services never log key
// material or plaintext.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-safe-share/models"
)

// UploadService seals files and stores them.
type UploadService interface {
	// Upload runs every item through Seal, BlobStore.Put and CreateFile.
	// Items are independent: the result slice has one entry per item in
	// input order, and a failed item never stops the others. The error is
	// reserved for batch preconditions such as an unknown target folder.
	Upload(ctx context.Context, ownerID, folderID string, items []models.UploadItem, progress models.ProgressFunc) ([]models.UploadResult, error)
}

// DownloadService fetches and opens stored files.
type DownloadService interface {
	// Download returns the authenticated plaintext of fileID.
	Download(ctx context.Context, ownerID, fileID string) (models.OpenedFile, error)

	// DownloadTo writes the plaintext of fileID into dir under its stored
	// name and returns the written path. Nothing is written unless the file
	// opened successfully.
	DownloadTo(ctx context.Context, ownerID, fileID, dir string) (string, error)
}

// FolderService manages the per-owner folder tree.
type FolderService interface {
	Create(ctx context.Context, ownerID, parentID, name string) (models.FolderRecord, error)
	List(ctx context.Context, ownerID, parentID string) (models.FolderContents, error)
	Delete(ctx context.Context, ownerID, folderID string) error
	Move(ctx context.Context, ownerID, folderID, newParentID string) (models.FolderRecord, error)
}

// FileService manages stored file records.
type FileService interface {
	List(ctx context.Context, ownerID, folderID string) ([]models.FileRecord, error)
	Get(ctx context.Context, ownerID, fileID string) (models.FileRecord, error)
	Delete(ctx context.Context, ownerID, fileID string) error
}

// BlobService is the blob server's view of the ciphertext store. Objects
// are addressed by owner and object id.
type BlobService interface {
	Put(ctx context.Context, ownerID string, data []byte) (objectID string, err error)
	Get(ctx context.Context, ownerID, objectID string) ([]byte, error)
	Delete(ctx context.Context, ownerID, objectID string) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
