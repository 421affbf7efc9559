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

// folderRepository is the SQL implementation of [FolderRepository].
type folderRepository struct {
	*DB
	validator validators.Validator
	logger    *logger.Logger
}

// NewFolderRepository constructs a [FolderRepository] backed by db.
func NewFolderRepository(db *DB, validator validators.Validator, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		DB:        db,
		validator: validator,
		logger:    logger,
	}
}

func (r *folderRepository) CreateFolder(ctx context.Context, record models.FolderRecord) error {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	query, args, err := r.buildInsertFolderQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "folderRepository.CreateFolder").
			Str("folder_id", record.ID).
			Msg("failed to insert folder record")

		if r.errorClassificator.IsUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *folderRepository) GetFolder(ctx context.Context, id string) (models.FolderRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectFolderQuery(id)
	if err != nil {
		return models.FolderRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanFolderRecord(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FolderRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.GetFolder").
			Str("folder_id", id).
			Msg("failed to scan folder record")
		return models.FolderRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = r.validator.Validate(ctx, record); err != nil {
		return models.FolderRecord{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return record, nil
}

// UpdateFolder rewrites parent, name, path and updated_at of an existing
// folder. CreatedAt and OwnerID are immutable.
func (r *folderRepository) UpdateFolder(ctx context.Context, record models.FolderRecord) error {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	query, args, err := r.buildUpdateFolderQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.UpdateFolder").
			Str("folder_id", record.ID).
			Msg("failed to update folder record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

func (r *folderRepository) DeleteFolder(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeleteFolderQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.DeleteFolder").
			Str("folder_id", id).
			Msg("failed to delete folder record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	err = requireAffected(result)
	if !errors.Is(err, ErrRecordNotFound) {
		return err
	}
	// nothing deleted: either the folder is gone or something still points at it
	if _, getErr := r.GetFolder(ctx, id); getErr != nil {
		return getErr
	}
	return ErrFolderInUse
}

func (r *folderRepository) QueryFolders(ctx context.Context, filter models.FolderFilter, order models.OrderBy) ([]models.FolderRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildQueryFoldersQuery(filter, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.QueryFolders").
			Str("owner_id", filter.OwnerID).
			Str("parent_id", filter.ParentID).
			Msg("failed to execute query for folder records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.FolderRecord, 0, 16)
	for rows.Next() {
		record, scanErr := scanFolderRecord(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if err = r.validator.Validate(ctx, record); err != nil {
			return nil, fmt.Errorf("%w: record %s: %w", ErrInvalidRecord, record.ID, err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func scanFolderRecord(row rowScanner) (models.FolderRecord, error) {
	var (
		r                    models.FolderRecord
		createdAt, updatedAt dbTime
	)

	err := row.Scan(
		&r.ID,
		&r.OwnerID,
		&r.ParentID,
		&r.Name,
		&r.Path,
		&r.SchemaVersion,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.FolderRecord{}, err
	}

	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
