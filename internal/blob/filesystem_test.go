// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileSystemStore_CreatesLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "blobs")

	_, err := NewFileSystemStore(root)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "files"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewFileSystemStore_EmptyRoot(t *testing.T) {
	_, err := NewFileSystemStore("")
	assert.ErrorIs(t, err, ErrUnsupportedStore)
}

func TestFileSystemStore_Put_WritesUnderOwner(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileSystemStore(root)
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "bob", []byte("sealed"))
	require.NoError(t, err)

	key := strings.TrimPrefix(url, "file://")
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed"), data)

	entries, err := os.ReadDir(filepath.Join(root, "files", "bob"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileSystemStore_URLSurvivesMove(t *testing.T) {
	parent := t.TempDir()
	oldRoot := filepath.Join(parent, "old")
	store, err := NewFileSystemStore(oldRoot)
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "o", []byte("portable"))
	require.NoError(t, err)

	newRoot := filepath.Join(parent, "new")
	require.NoError(t, os.Rename(oldRoot, newRoot))

	moved, err := NewFileSystemStore(newRoot)
	require.NoError(t, err)
	data, err := moved.Get(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, []byte("portable"), data)
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := writeFileAtomic(filepath.Join(t.TempDir(), "missing", "x"), []byte("x"))
	assert.Error(t, err)
}
