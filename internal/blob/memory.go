// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"bytes"
	"context"
	"sync"
)

const schemeMemory = "memory"

// MemoryStore keeps blobs in process memory. It is used in tests and for
// throwaway local runs.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Put implements [BlobStore].
func (m *MemoryStore) Put(ctx context.Context, ownerID string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := newObjectKey(ownerID)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.objects[key] = bytes.Clone(data)
	m.mu.Unlock()

	return schemeMemory + "://" + key, nil
}

// Get implements [BlobStore].
func (m *MemoryStore) Get(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := keyFromURL(url, schemeMemory)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	data, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrBlobNotFound
	}

	if data == nil {
		return []byte{}, nil
	}
	return bytes.Clone(data), nil
}

// Delete implements [BlobStore].
func (m *MemoryStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := keyFromURL(url, schemeMemory)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return ErrBlobNotFound
	}
	delete(m.objects, key)

	return nil
}

// Len reports the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// URL implements [Locator].
func (m *MemoryStore) URL(key string) string {
	return schemeMemory + "://" + key
}

// Key implements [Locator].
func (m *MemoryStore) Key(url string) (string, error) {
	return keyFromURL(url, schemeMemory)
}
