// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package blob stores opaque ciphertext on behalf of the upload and
// download pipelines.
//
// A [BlobStore] never sees plaintext or keys. Objects are addressed by a
// backend specific URL that is returned from Put and persisted in the file
// record; callers treat it as opaque. Object keys follow
// files/{ownerID}/{uuid} on every backend.
package blob

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_store_mock.go -package=mock

// BlobStore is the ciphertext storage contract.
type BlobStore interface {
	// Put stores data under a fresh key for ownerID and returns its URL.
	Put(ctx context.Context, ownerID string, data []byte) (string, error)

	// Get returns the bytes stored at url. A missing object yields
	// [ErrBlobNotFound], which also matches [ErrBlobUnavailable].
	Get(ctx context.Context, url string) ([]byte, error)

	// Delete removes the object at url. A missing object yields
	// [ErrBlobNotFound].
	Delete(ctx context.Context, url string) error
}

// Locator maps object keys to backend URLs and back. The memory,
// filesystem and s3 backends implement it so the blob server can address
// objects by owner and object id.
type Locator interface {
	// URL returns the backend URL of key.
	URL(key string) string

	// Key extracts and validates the object key of url.
	Key(url string) (string, error)
}
