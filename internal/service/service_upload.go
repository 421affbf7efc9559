// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/packager"
	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/MKhiriev/go-safe-share/internal/utils"
	"github.com/MKhiriev/go-safe-share/internal/validators"
	"github.com/MKhiriev/go-safe-share/internal/workers"
	"github.com/MKhiriev/go-safe-share/models"
)

// Progress milestones reported for every file.
const (
	progressEncrypting = 10
	progressSealed     = 30
	progressUploading  = 50
	progressStored     = 70
	progressPersisted  = 100
)

type uploadService struct {
	packager  packager.FilePackager
	blobs     blob.BlobStore
	files     store.FileRepository
	folders   store.FolderRepository
	pool      *workers.Pool
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewUploadService wires the upload pipeline. pool bounds how many files are
// processed at once.
func NewUploadService(p packager.FilePackager, blobs blob.BlobStore, metadata *store.MetadataStore, pool *workers.Pool, logger *logger.Logger) UploadService {
	return &uploadService{
		packager:  p,
		blobs:     blobs,
		files:     metadata.FileRepository,
		folders:   metadata.FolderRepository,
		pool:      pool,
		validator: validators.NewRecordValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (u *uploadService) Upload(ctx context.Context, ownerID, folderID string, items []models.UploadItem, progress models.ProgressFunc) ([]models.UploadResult, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidOwnerID
	}
	if folderID == "" {
		folderID = models.RootFolderID
	}
	if err := checkFolder(ctx, u.folders, ownerID, folderID); err != nil {
		return nil, fmt.Errorf("resolve target folder: %w", err)
	}

	var mu sync.Mutex
	report := func(p models.UploadProgress) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		progress(p)
	}

	results := make([]models.UploadResult, len(items))
	jobs := make([]workers.Worker, len(items))
	for i, item := range items {
		i, item := i, item
		results[i] = models.UploadResult{FileName: item.FileName, State: models.UploadPending}
		jobs[i] = workers.WorkerFunc(func(ctx context.Context) error {
			results[i] = u.uploadOne(ctx, ownerID, folderID, i, item, report)
			return results[i].Err
		})
	}

	// per-file errors are carried in results
	_ = u.pool.Run(ctx, jobs...)

	return results, nil
}

// uploadOne drives a single file through its state machine. Stages run
// strictly in order; the record is created only after the blob is stored
// and only if ctx is still live.
func (u *uploadService) uploadOne(ctx context.Context, ownerID, folderID string, idx int, item models.UploadItem, report func(models.UploadProgress)) models.UploadResult {
	log := u.logger.With().
		Int("index", idx).
		Str("file_name", item.FileName).
		Logger()

	res := models.UploadResult{FileName: item.FileName, State: models.UploadPending}
	percent := 0
	step := func(state models.UploadState, p int) {
		res.State = state
		percent = p
		report(models.UploadProgress{Index: idx, FileName: item.FileName, State: state, Percent: p})
	}
	fail := func(stage string, err error) models.UploadResult {
		step(models.UploadFailed, percent)
		res.Err = fmt.Errorf("%w: %s: %w", ErrPartialUploadAbandoned, stage, err)
		log.Warn().Err(err).Str("stage", stage).Msg("upload abandoned")
		return res
	}

	// checked before sealing so an invalid item never leaves a stored blob
	if err := u.validator.Validate(ctx, models.FileRecord{OwnerID: ownerID, FolderID: folderID, Name: item.FileName},
		validators.FieldOwnerID, validators.FieldFolderID, validators.FieldName); err != nil {
		return fail("validate", err)
	}

	if err := ctx.Err(); err != nil {
		return fail("encrypt", err)
	}
	step(models.UploadEncrypting, progressEncrypting)

	bundle, err := u.packager.Seal(item.Content, item.FileName, item.MimeType)
	if err != nil {
		return fail("encrypt", err)
	}
	step(models.UploadEncrypting, progressSealed)

	if err = ctx.Err(); err != nil {
		return fail("upload", err)
	}
	step(models.UploadUploading, progressUploading)

	blobURL, err := u.blobs.Put(ctx, ownerID, bundle.Ciphertext)
	if err != nil {
		return fail("upload", err)
	}
	step(models.UploadUploading, progressStored)

	if err = ctx.Err(); err != nil {
		// the stored blob stays behind as an orphan
		log.Info().Msg("blob stored but upload cancelled before metadata")
		return fail("persist", err)
	}

	now := u.now()
	record := models.FileRecord{
		ID:             u.ids.Generate(),
		OwnerID:        ownerID,
		FolderID:       folderID,
		Name:           bundle.FileName,
		MimeType:       bundle.MimeType,
		PlaintextSize:  bundle.PlaintextSize,
		CiphertextSize: bundle.CiphertextSize,
		BlobURL:        blobURL,
		Nonce:          bundle.Nonce,
		RawKey:         bundle.RawKey,
		FormatVersion:  bundle.FormatVersion,
		SchemaVersion:  models.CurrentSchemaVersion,
		IsShared:       false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = u.files.CreateFile(ctx, record); err != nil {
		return fail("persist", err)
	}
	step(models.UploadPersisted, progressPersisted)

	log.Info().Str("file_id", record.ID).Int64("size", record.PlaintextSize).Msg("file uploaded")

	res.Record = &record
	return res
}
