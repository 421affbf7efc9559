// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-safe-share/models"
)

const (
	filesTable   = "files"
	foldersTable = "folders"
)

var fileColumns = []string{
	"id",
	"owner_id",
	"folder_id",
	"name",
	"mime_type",
	"plaintext_size",
	"ciphertext_size",
	"blob_url",
	"nonce",
	"raw_key",
	"format_version",
	"schema_version",
	"is_shared",
	"created_at",
	"updated_at",
}

var folderColumns = []string{
	"id",
	"owner_id",
	"parent_id",
	"name",
	"path",
	"schema_version",
	"created_at",
	"updated_at",
}

// orderClause returns a deterministic ORDER BY list; id breaks ties.
func orderClause(order models.OrderBy) ([]string, error) {
	switch order {
	case "", models.OrderByName:
		return []string{"name ASC", "id ASC"}, nil
	case models.OrderByCreatedAt:
		return []string{"created_at ASC", "id ASC"}, nil
	default:
		return nil, fmt.Errorf("%w: unknown order %q", ErrBuildingSQLQuery, order)
	}
}

func (db *DB) buildInsertFileQuery(r models.FileRecord) (string, []any, error) {
	return db.builder().
		Insert(filesTable).
		Columns(fileColumns...).
		Values(
			r.ID,
			r.OwnerID,
			r.FolderID,
			r.Name,
			r.MimeType,
			r.PlaintextSize,
			r.CiphertextSize,
			r.BlobURL,
			r.Nonce,
			r.RawKey,
			r.FormatVersion,
			r.SchemaVersion,
			r.IsShared,
			db.timestamp(r.CreatedAt),
			db.timestamp(r.UpdatedAt),
		).
		ToSql()
}

func (db *DB) buildSelectFileQuery(id string) (string, []any, error) {
	return db.builder().
		Select(fileColumns...).
		From(filesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildQueryFilesQuery(filter models.FileFilter, order models.OrderBy) (string, []any, error) {
	orderBy, err := orderClause(order)
	if err != nil {
		return "", nil, err
	}

	where := sq.Eq{"owner_id": filter.OwnerID}
	if filter.FolderID != "" {
		where["folder_id"] = filter.FolderID
	}

	return db.builder().
		Select(fileColumns...).
		From(filesTable).
		Where(where).
		OrderBy(orderBy...).
		ToSql()
}

func (db *DB) buildDeleteFileQuery(id string) (string, []any, error) {
	return db.builder().
		Delete(filesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildInsertFolderQuery(r models.FolderRecord) (string, []any, error) {
	return db.builder().
		Insert(foldersTable).
		Columns(folderColumns...).
		Values(
			r.ID,
			r.OwnerID,
			r.ParentID,
			r.Name,
			r.Path,
			r.SchemaVersion,
			db.timestamp(r.CreatedAt),
			db.timestamp(r.UpdatedAt),
		).
		ToSql()
}

func (db *DB) buildSelectFolderQuery(id string) (string, []any, error) {
	return db.builder().
		Select(folderColumns...).
		From(foldersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildUpdateFolderQuery(r models.FolderRecord) (string, []any, error) {
	return db.builder().
		Update(foldersTable).
		Set("parent_id", r.ParentID).
		Set("name", r.Name).
		Set("path", r.Path).
		Set("schema_version", r.SchemaVersion).
		Set("updated_at", db.timestamp(r.UpdatedAt)).
		Where(sq.Eq{"id": r.ID}).
		ToSql()
}

func (db *DB) buildQueryFoldersQuery(filter models.FolderFilter, order models.OrderBy) (string, []any, error) {
	orderBy, err := orderClause(order)
	if err != nil {
		return "", nil, err
	}

	where := sq.Eq{"owner_id": filter.OwnerID}
	if filter.ParentID != "" {
		where["parent_id"] = filter.ParentID
	}

	return db.builder().
		Select(folderColumns...).
		From(foldersTable).
		Where(where).
		OrderBy(orderBy...).
		ToSql()
}

// buildDeleteFolderQuery deletes the folder only while nothing references it,
// so the emptiness check and the delete are one statement.
func (db *DB) buildDeleteFolderQuery(id string) (string, []any, error) {
	return db.builder().
		Delete(foldersTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM "+foldersTable+" AS c WHERE c.parent_id = ?)", id)).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM "+filesTable+" AS f WHERE f.folder_id = ?)", id)).
		ToSql()
}
