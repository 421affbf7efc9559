// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const schemeFile = "file"

// FileSystemStore keeps blobs as files under a root directory:
//
//	<root>/
//	  files/
//	    <ownerID>/
//	      <uuid>
//
// URLs carry the key relative to root, so the directory can be moved
// without rewriting records.
type FileSystemStore struct {
	root string
}

// NewFileSystemStore creates root if needed and returns a store over it.
func NewFileSystemStore(root string) (*FileSystemStore, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty filesystem root", ErrUnsupportedStore)
	}
	if err := os.MkdirAll(filepath.Join(root, keyPrefix), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	return &FileSystemStore{root: root}, nil
}

// Put implements [BlobStore]. The object becomes visible only after it has
// been fully written.
func (f *FileSystemStore) Put(ctx context.Context, ownerID string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := newObjectKey(ownerID)
	if err != nil {
		return "", err
	}

	destPath := f.path(key)
	if err = os.MkdirAll(filepath.Dir(destPath), 0o700); err != nil {
		return "", fmt.Errorf("%w: create owner directory: %w", ErrBlobUnavailable, err)
	}
	if err = writeFileAtomic(destPath, data); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}

	return schemeFile + "://" + key, nil
}

// Get implements [BlobStore].
func (f *FileSystemStore) Get(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := keyFromURL(url, schemeFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("%w: read blob: %w", ErrBlobUnavailable, err)
	}

	return data, nil
}

// Delete implements [BlobStore].
func (f *FileSystemStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := keyFromURL(url, schemeFile)
	if err != nil {
		return err
	}

	if err = os.Remove(f.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrBlobNotFound
		}
		return fmt.Errorf("%w: remove blob: %w", ErrBlobUnavailable, err)
	}

	return nil
}

func (f *FileSystemStore) path(key string) string {
	return filepath.Join(f.root, filepath.FromSlash(key))
}

// writeFileAtomic writes data to a temp file in the destination directory
// and renames it into place.
func writeFileAtomic(destPath string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err = tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// URL implements [Locator].
func (f *FileSystemStore) URL(key string) string {
	return schemeFile + "://" + key
}

// Key implements [Locator].
func (f *FileSystemStore) Key(url string) (string, error) {
	return keyFromURL(url, schemeFile)
}
