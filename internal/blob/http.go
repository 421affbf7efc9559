// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-safe-share/internal/adapter"
)

// HTTPStore keeps blobs on the reference blob server. URLs are the absolute
// http(s) locations returned by the server.
type HTTPStore struct {
	adapter adapter.BlobServerAdapter
}

// NewHTTPStore wraps a configured blob server adapter.
func NewHTTPStore(a adapter.BlobServerAdapter) *HTTPStore {
	return &HTTPStore{adapter: a}
}

// Put implements [BlobStore].
func (h *HTTPStore) Put(ctx context.Context, ownerID string, data []byte) (string, error) {
	if !validSegment(ownerID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidOwnerID, ownerID)
	}

	put, err := h.adapter.PutBlob(ctx, ownerID, data)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return put.URL, nil
}

// Get implements [BlobStore].
func (h *HTTPStore) Get(ctx context.Context, url string) ([]byte, error) {
	data, err := h.adapter.GetBlob(ctx, url)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	if data == nil {
		data = []byte{}
	}

	return data, nil
}

// Delete implements [BlobStore].
func (h *HTTPStore) Delete(ctx context.Context, url string) error {
	if err := h.adapter.DeleteBlob(ctx, url); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func mapAdapterError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	case errors.Is(err, adapter.ErrForeignURL):
		return fmt.Errorf("%w: %w", ErrInvalidBlobURL, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrBlobNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrBlobUnavailable, err)
	}
}
