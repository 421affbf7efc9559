// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/crypto"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/packager"
	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/MKhiriev/go-safe-share/internal/validators"
	"github.com/MKhiriev/go-safe-share/internal/workers"
	"github.com/MKhiriev/go-safe-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUploadService(m *mocks, metadata *store.MetadataStore, concurrency int) *uploadService {
	svc := NewUploadService(m.packager, m.blobs, metadata, workers.NewPool(concurrency), logger.Nop()).(*uploadService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func testBundle(name string) models.EncryptedBundle {
	return models.EncryptedBundle{
		Ciphertext:     []byte("ciphertext-and-tag"),
		Nonce:          make([]byte, crypto.NonceSize),
		RawKey:         make([]byte, crypto.KeySize),
		FileName:       name,
		MimeType:       "text/plain",
		PlaintextSize:  2,
		CiphertextSize: 18,
		FormatVersion:  models.BundleFormatV2,
	}
}

// progressRecorder collects notifications.
type progressRecorder struct {
	events []models.UploadProgress
}

func (p *progressRecorder) record(ev models.UploadProgress) {
	p.events = append(p.events, ev)
}

func (p *progressRecorder) percents(idx int) []int {
	var out []int
	for _, ev := range p.events {
		if ev.Index == idx {
			out = append(out, ev.Percent)
		}
	}
	return out
}

// ── happy path ──────────────────────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)
	ctx := context.Background()

	item := models.UploadItem{FileName: "a.txt", MimeType: "text/plain", Content: []byte("hi")}
	bundle := testBundle("a.txt")

	var created models.FileRecord
	gomock.InOrder(
		m.packager.EXPECT().Seal(item.Content, "a.txt", "text/plain").Return(bundle, nil),
		m.blobs.EXPECT().Put(gomock.Any(), "owner-1", bundle.Ciphertext).Return("memory://files/owner-1/x", nil),
		m.files.EXPECT().CreateFile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r models.FileRecord) error {
				created = r
				return nil
			}),
	)

	rec := &progressRecorder{}
	results, err := svc.Upload(ctx, "owner-1", "", []models.UploadItem{item}, rec.record)
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	require.NoError(t, res.Err)
	assert.Equal(t, models.UploadPersisted, res.State)
	require.NotNil(t, res.Record)
	assert.Equal(t, created, *res.Record)

	assert.Len(t, created.ID, 36)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, models.RootFolderID, created.FolderID)
	assert.Equal(t, "a.txt", created.Name)
	assert.Equal(t, "memory://files/owner-1/x", created.BlobURL)
	assert.Equal(t, bundle.Nonce, created.Nonce)
	assert.Equal(t, bundle.RawKey, created.RawKey)
	assert.Equal(t, bundle.PlaintextSize, created.PlaintextSize)
	assert.Equal(t, bundle.CiphertextSize, created.CiphertextSize)
	assert.Equal(t, models.BundleFormatV2, created.FormatVersion)
	assert.Equal(t, models.CurrentSchemaVersion, created.SchemaVersion)
	assert.False(t, created.IsShared)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.Equal(t, testNow, created.UpdatedAt)

	assert.Equal(t, []int{10, 30, 50, 70, 100}, rec.percents(0))
	assert.Equal(t, models.UploadPersisted, rec.events[len(rec.events)-1].State)
}

func TestUpload_IntoFolder_ChecksOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)

	m.folders.EXPECT().GetFolder(gomock.Any(), "f-1").Return(models.FolderRecord{ID: "f-1", OwnerID: "someone-else"}, nil)

	results, err := svc.Upload(context.Background(), "owner-1", "f-1", []models.UploadItem{{FileName: "a"}}, nil)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
	assert.Nil(t, results)
}

func TestUpload_EmptyOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)

	_, err := svc.Upload(context.Background(), " ", "", []models.UploadItem{{FileName: "a"}}, nil)
	assert.ErrorIs(t, err, ErrInvalidOwnerID)
}

// ── failures never create a record ──────────────────────────────────────────

func TestUpload_SealFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)

	m.packager.EXPECT().Seal(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.EncryptedBundle{}, fmt.Errorf("seal: %w", crypto.ErrCryptoFailure))

	rec := &progressRecorder{}
	results, err := svc.Upload(context.Background(), "o", "", []models.UploadItem{{FileName: "a"}}, rec.record)
	require.NoError(t, err)

	res := results[0]
	assert.Equal(t, models.UploadFailed, res.State)
	assert.Nil(t, res.Record)
	assert.ErrorIs(t, res.Err, ErrPartialUploadAbandoned)
	assert.ErrorIs(t, res.Err, crypto.ErrCryptoFailure)
	assert.Equal(t, []int{10, 10}, rec.percents(0))
}

func TestUpload_BlankNameRejectedBeforeSeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)

	// no Seal, Put or CreateFile expectations: nothing may be stored
	rec := &progressRecorder{}
	results, err := svc.Upload(context.Background(), "o", "", []models.UploadItem{{FileName: "  ", Content: []byte("x")}}, rec.record)
	require.NoError(t, err)

	res := results[0]
	assert.Equal(t, models.UploadFailed, res.State)
	assert.Nil(t, res.Record)
	assert.ErrorIs(t, res.Err, ErrPartialUploadAbandoned)
	assert.ErrorIs(t, res.Err, validators.ErrEmptyName)
	assert.Equal(t, []int{0}, rec.percents(0))
}

func TestUpload_BlankNameStoresNoBlob_Integration(t *testing.T) {
	blobs := blob.NewMemoryStore()
	svc := NewUploadService(packager.NewFilePackager(crypto.NewCryptoContext()), blobs, newSQLiteMetadata(t), workers.NewPool(1), logger.Nop())

	results, err := svc.Upload(context.Background(), "alice", "", []models.UploadItem{
		{FileName: "", Content: []byte("orphan?")},
		{FileName: "kept.txt", Content: []byte("kept")},
	}, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, results[0].Err, validators.ErrEmptyName)
	require.NoError(t, results[1].Err)
	assert.Equal(t, 1, blobs.Len())
}

func TestUpload_BlobFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)

	m.packager.EXPECT().Seal(gomock.Any(), gomock.Any(), gomock.Any()).Return(testBundle("a"), nil)
	m.blobs.EXPECT().Put(gomock.Any(), "o", gomock.Any()).Return("", fmt.Errorf("%w: timeout", blob.ErrBlobUnavailable))

	rec := &progressRecorder{}
	results, err := svc.Upload(context.Background(), "o", "", []models.UploadItem{{FileName: "a"}}, rec.record)
	require.NoError(t, err)

	res := results[0]
	assert.Equal(t, models.UploadFailed, res.State)
	assert.ErrorIs(t, res.Err, ErrPartialUploadAbandoned)
	assert.ErrorIs(t, res.Err, blob.ErrBlobUnavailable)
	assert.Equal(t, []int{10, 30, 50, 50}, rec.percents(0))
}

func TestUpload_MetadataFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)

	m.packager.EXPECT().Seal(gomock.Any(), gomock.Any(), gomock.Any()).Return(testBundle("a"), nil)
	m.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("memory://files/o/x", nil)
	m.files.EXPECT().CreateFile(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	results, err := svc.Upload(context.Background(), "o", "", []models.UploadItem{{FileName: "a"}}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, ErrPartialUploadAbandoned)
	assert.ErrorIs(t, results[0].Err, store.ErrExecutingStatement)
}

func TestUpload_CancelledBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := svc.Upload(ctx, "o", "", []models.UploadItem{{FileName: "a"}, {FileName: "b"}}, nil)
	require.NoError(t, err)
	for _, res := range results {
		assert.Equal(t, models.UploadFailed, res.State)
		assert.ErrorIs(t, res.Err, ErrPartialUploadAbandoned)
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestUpload_CancelledDuringPut_NoRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.packager.EXPECT().Seal(gomock.Any(), gomock.Any(), gomock.Any()).Return(testBundle("a"), nil)
	m.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string, []byte) (string, error) {
			cancel()
			return "memory://files/o/orphan", nil
		})
	// no CreateFile expectation: gomock fails the test if it is called

	results, err := svc.Upload(ctx, "o", "", []models.UploadItem{{FileName: "a"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.UploadFailed, results[0].State)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

// ── batches ─────────────────────────────────────────────────────────────────

func TestUpload_FailureIsolatedPerFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 1)

	items := []models.UploadItem{
		{FileName: "one", Content: []byte("1")},
		{FileName: "two", Content: []byte("2")},
		{FileName: "three", Content: []byte("3")},
	}

	m.packager.EXPECT().Seal(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ []byte, name, _ string) (models.EncryptedBundle, error) {
			if name == "two" {
				return models.EncryptedBundle{}, crypto.ErrCryptoFailure
			}
			return testBundle(name), nil
		}).Times(3)
	m.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("memory://files/o/x", nil).Times(2)
	m.files.EXPECT().CreateFile(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	results, err := svc.Upload(context.Background(), "o", "", items, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "one", results[0].FileName)
	assert.Equal(t, models.UploadPersisted, results[0].State)
	assert.Equal(t, models.UploadFailed, results[1].State)
	assert.Equal(t, models.UploadPersisted, results[2].State)
	assert.NotEqual(t, results[0].Record.ID, results[2].Record.ID)
}

func TestUpload_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, metadata := newMocks(ctrl)
	svc := newTestUploadService(m, metadata, 4)

	const n = 16
	items := make([]models.UploadItem, n)
	for i := range items {
		items[i] = models.UploadItem{FileName: fmt.Sprintf("f%02d", i)}
	}

	m.packager.EXPECT().Seal(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ []byte, name, _ string) (models.EncryptedBundle, error) {
			return testBundle(name), nil
		}).Times(n)
	m.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("memory://files/o/x", nil).Times(n)
	m.files.EXPECT().CreateFile(gomock.Any(), gomock.Any()).Return(nil).Times(n)

	rec := &progressRecorder{}
	results, err := svc.Upload(context.Background(), "o", "", items, rec.record)
	require.NoError(t, err)

	for i, res := range results {
		assert.Equal(t, items[i].FileName, res.FileName)
		assert.Equal(t, models.UploadPersisted, res.State)
		assert.Equal(t, []int{10, 30, 50, 70, 100}, rec.percents(i))
	}
}

// ── end to end over real collaborators ──────────────────────────────────────

func TestUploadDownload_RoundTrip(t *testing.T) {
	metadata := newSQLiteMetadata(t)
	blobs := blob.NewMemoryStore()
	p := packager.NewFilePackager(crypto.NewCryptoContext())
	svcs := NewServices(p, blobs, metadata, config.Workers{UploadConcurrency: 2}, logger.Nop())
	ctx := context.Background()

	items := []models.UploadItem{
		{FileName: "notes.txt", MimeType: "text/plain", Content: []byte("top secret")},
		{FileName: "empty.bin", MimeType: "application/octet-stream", Content: []byte{}},
	}
	results, err := svcs.UploadService.Upload(ctx, "alice", "", items, nil)
	require.NoError(t, err)
	for _, res := range results {
		require.NoError(t, res.Err)
	}
	assert.Equal(t, 2, blobs.Len())

	for i, res := range results {
		opened, err := svcs.DownloadService.Download(ctx, "alice", res.Record.ID)
		require.NoError(t, err)
		assert.Equal(t, items[i].Content, opened.Plaintext)
		assert.Equal(t, items[i].FileName, opened.FileName)
		assert.Equal(t, items[i].MimeType, opened.MimeType)
	}

	_, err = svcs.DownloadService.Download(ctx, "mallory", results[0].Record.ID)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestUpload_CancelledLeavesNoRecord_Integration(t *testing.T) {
	metadata := newSQLiteMetadata(t)
	p := packager.NewFilePackager(crypto.NewCryptoContext())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	blobs := &cancellingStore{MemoryStore: blob.NewMemoryStore(), cancel: cancel}
	svc := NewUploadService(p, blobs, metadata, workers.NewPool(1), logger.Nop())

	results, err := svc.Upload(ctx, "alice", "", []models.UploadItem{{FileName: "a"}}, nil)
	require.NoError(t, err)
	assert.True(t, errors.Is(results[0].Err, context.Canceled))
	assert.Equal(t, 1, blobs.Len(), "the orphaned blob is not rolled back")

	files, err := metadata.FileRepository.QueryFiles(context.Background(), models.FileFilter{OwnerID: "alice"}, models.OrderByName)
	require.NoError(t, err)
	assert.Empty(t, files)
}

// cancellingStore stores the blob and then cancels the upload, as if the
// user aborted right after the network write.
type cancellingStore struct {
	*blob.MemoryStore
	cancel context.CancelFunc
}

func (c *cancellingStore) Put(ctx context.Context, ownerID string, data []byte) (string, error) {
	url, err := c.MemoryStore.Put(ctx, ownerID, data)
	c.cancel()
	return url, err
}
