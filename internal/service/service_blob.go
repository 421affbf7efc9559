// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/logger"
)

// LocatableBlobStore is a BlobStore whose URLs can be rebuilt from object
// keys. The blob server requires one.
type LocatableBlobStore interface {
	blob.BlobStore
	blob.Locator
}

type blobService struct {
	store LocatableBlobStore

	logger *logger.Logger
}

// NewBlobService exposes store to the blob server handlers.
func NewBlobService(store LocatableBlobStore, logger *logger.Logger) BlobService {
	return &blobService{store: store, logger: logger}
}

func (b *blobService) Put(ctx context.Context, ownerID string, data []byte) (string, error) {
	url, err := b.store.Put(ctx, ownerID, data)
	if err != nil {
		return "", fmt.Errorf("store blob: %w", err)
	}

	key, err := b.store.Key(url)
	if err != nil {
		return "", fmt.Errorf("locate stored blob: %w", err)
	}
	_, objectID, err := blob.SplitKey(key)
	if err != nil {
		return "", fmt.Errorf("locate stored blob: %w", err)
	}

	return objectID, nil
}

func (b *blobService) Get(ctx context.Context, ownerID, objectID string) ([]byte, error) {
	key, err := blob.ObjectKey(ownerID, objectID)
	if err != nil {
		return nil, err
	}
	return b.store.Get(ctx, b.store.URL(key))
}

func (b *blobService) Delete(ctx context.Context, ownerID, objectID string) error {
	key, err := blob.ObjectKey(ownerID, objectID)
	if err != nil {
		return err
	}
	return b.store.Delete(ctx, b.store.URL(key))
}
