// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/validators"
	"github.com/MKhiriev/go-safe-share/models"
)

// fileRepository is the SQL implementation of [FileRepository]. It works
// against both SQLite and PostgreSQL through the dialect settings of [DB].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext]. Key material is never logged.
type fileRepository struct {
	*DB
	validator validators.Validator
	logger    *logger.Logger
}

// NewFileRepository constructs a [FileRepository] backed by db. Records are
// checked with validator on write and on read.
func NewFileRepository(db *DB, validator validators.Validator, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		DB:        db,
		validator: validator,
		logger:    logger,
	}
}

// CreateFile inserts a new record.
//
// Error handling:
//   - validation failure → [ErrInvalidRecord].
//   - duplicate id → [ErrRecordAlreadyExists].
//   - any other driver error → [ErrExecutingStatement].
func (f *fileRepository) CreateFile(ctx context.Context, record models.FileRecord) error {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	query, args, err := f.buildInsertFileQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = f.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "fileRepository.CreateFile").
			Str("file_id", record.ID).
			Str("owner_id", record.OwnerID).
			Msg("failed to insert file record")

		if f.errorClassificator.IsUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetFile returns the record with the given id or [ErrRecordNotFound].
func (f *fileRepository) GetFile(ctx context.Context, id string) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.buildSelectFileQuery(id)
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanFileRecord(f.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FileRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.GetFile").
			Str("file_id", id).
			Msg("failed to scan file record")
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = f.validator.Validate(ctx, record); err != nil {
		log.Warn().Err(err).Str("file_id", id).Msg("stored file record is invalid")
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return record, nil
}

// DeleteFile removes the record with the given id or returns
// [ErrRecordNotFound] when nothing was deleted.
func (f *fileRepository) DeleteFile(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := f.buildDeleteFileQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := f.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.DeleteFile").
			Str("file_id", id).
			Msg("failed to delete file record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

// QueryFiles returns the owner's records matching filter. Invalid stored
// records fail the whole query.
func (f *fileRepository) QueryFiles(ctx context.Context, filter models.FileFilter, order models.OrderBy) ([]models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.buildQueryFilesQuery(filter, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.QueryFiles").
			Str("owner_id", filter.OwnerID).
			Str("folder_id", filter.FolderID).
			Msg("failed to execute query for file records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.FileRecord, 0, 16)
	for rows.Next() {
		record, scanErr := scanFileRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "fileRepository.QueryFiles").
				Str("owner_id", filter.OwnerID).
				Msg("failed to scan file row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if err = f.validator.Validate(ctx, record); err != nil {
			return nil, fmt.Errorf("%w: record %s: %w", ErrInvalidRecord, record.ID, err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "fileRepository.QueryFiles").
			Str("owner_id", filter.OwnerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFileRecord(row rowScanner) (models.FileRecord, error) {
	var (
		r                    models.FileRecord
		createdAt, updatedAt dbTime
	)

	err := row.Scan(
		&r.ID,
		&r.OwnerID,
		&r.FolderID,
		&r.Name,
		&r.MimeType,
		&r.PlaintextSize,
		&r.CiphertextSize,
		&r.BlobURL,
		&r.Nonce,
		&r.RawKey,
		&r.FormatVersion,
		&r.SchemaVersion,
		&r.IsShared,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.FileRecord{}, err
	}

	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}
