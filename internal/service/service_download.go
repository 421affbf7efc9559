// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/packager"
	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/MKhiriev/go-safe-share/models"
)

type downloadService struct {
	packager packager.FilePackager
	blobs    blob.BlobStore
	files    store.FileRepository

	logger *logger.Logger
}

// NewDownloadService wires the download pipeline.
func NewDownloadService(p packager.FilePackager, blobs blob.BlobStore, metadata *store.MetadataStore, logger *logger.Logger) DownloadService {
	return &downloadService{
		packager: p,
		blobs:    blobs,
		files:    metadata.FileRepository,
		logger:   logger,
	}
}

// Download runs GetFile, the ownership check, BlobStore.Get and Open in
// that order. Nothing is retried; crypto errors are returned unchanged.
func (d *downloadService) Download(ctx context.Context, ownerID, fileID string) (models.OpenedFile, error) {
	record, err := getOwnedFile(ctx, d.files, ownerID, fileID)
	if err != nil {
		return models.OpenedFile{}, fmt.Errorf("get file record: %w", err)
	}

	ciphertext, err := d.blobs.Get(ctx, record.BlobURL)
	if err != nil {
		if !errors.Is(err, blob.ErrBlobUnavailable) {
			// e.g. a URL written by another backend
			err = fmt.Errorf("%w: %w", blob.ErrBlobUnavailable, err)
		}
		return models.OpenedFile{}, fmt.Errorf("fetch blob of %s: %w", fileID, err)
	}

	opened, err := d.packager.Open(models.EncryptedBundle{
		Ciphertext:     ciphertext,
		Nonce:          record.Nonce,
		RawKey:         record.RawKey,
		FileName:       record.Name,
		MimeType:       record.MimeType,
		PlaintextSize:  record.PlaintextSize,
		CiphertextSize: record.CiphertextSize,
		FormatVersion:  record.FormatVersion,
	})
	if err != nil {
		d.logger.Warn().Err(err).Str("file_id", fileID).Msg("file failed to open")
		return models.OpenedFile{}, fmt.Errorf("open %s: %w", fileID, err)
	}

	return opened, nil
}

func (d *downloadService) DownloadTo(ctx context.Context, ownerID, fileID, dir string) (string, error) {
	opened, err := d.Download(ctx, ownerID, fileID)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(dir, safeFileName(opened.FileName, fileID))
	if _, err = os.Stat(dest); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat destination: %w", err)
	}

	if err = writeFileAtomic(dest, opened.Plaintext); err != nil {
		return "", err
	}

	d.logger.Info().Str("file_id", fileID).Str("path", dest).Msg("file downloaded")
	return dest, nil
}

// safeFileName keeps only the final element of name so a stored name can
// never point outside the target directory.
func safeFileName(name, fallback string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || name == "." || name == ".." || name == "/" {
		return fallback
	}
	return name
}

func writeFileAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
