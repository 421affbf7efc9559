// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-safe-share/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileRow(r models.FileRecord) *sqlmock.Rows {
	return sqlmock.NewRows(fileColumns).AddRow(
		r.ID, r.OwnerID, r.FolderID, r.Name, r.MimeType,
		r.PlaintextSize, r.CiphertextSize, r.BlobURL, r.Nonce, r.RawKey,
		r.FormatVersion, r.SchemaVersion, r.IsShared, r.CreatedAt, r.UpdatedAt,
	)
}

// ── sqlmock (postgres dialect) ────────────────────────────────────────────────

func TestFileRepository_CreateFile_Success(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	r := sampleFile("f-1", "owner", models.RootFolderID, "a.txt")

	mock.ExpectExec("INSERT INTO files").
		WithArgs(r.ID, r.OwnerID, r.FolderID, r.Name, r.MimeType, r.PlaintextSize, r.CiphertextSize,
			r.BlobURL, r.Nonce, r.RawKey, r.FormatVersion, r.SchemaVersion, r.IsShared, testNow, testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateFile(context.Background(), r))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_CreateFile_UniqueViolation(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectExec("INSERT INTO files").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.CreateFile(context.Background(), sampleFile("f-1", "owner", "root", "a.txt"))
	assert.ErrorIs(t, err, ErrRecordAlreadyExists)
}

func TestFileRepository_CreateFile_DBError(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectExec("INSERT INTO files").WillReturnError(errors.New("network down"))

	err := repo.CreateFile(context.Background(), sampleFile("f-1", "owner", "root", "a.txt"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrRecordAlreadyExists)
}

func TestFileRepository_CreateFile_InvalidRecordNeverHitsDB(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	r := sampleFile("f-1", "owner", "root", "a.txt")
	r.RawKey = nil

	err := repo.CreateFile(context.Background(), r)
	assert.ErrorIs(t, err, ErrInvalidRecord)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_GetFile_Success(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	want := sampleFile("f-1", "owner", "root", "a.txt")

	mock.ExpectQuery("SELECT (.+) FROM files WHERE id = \\$1").
		WithArgs("f-1").
		WillReturnRows(fileRow(want))

	got, err := repo.GetFile(context.Background(), "f-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileRepository_GetFile_NotFound(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM files").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(fileColumns))

	_, err := repo.GetFile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFileRepository_GetFile_InvalidStoredRecord(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	stored := sampleFile("f-1", "owner", "root", "a.txt")
	stored.SchemaVersion = 42

	mock.ExpectQuery("SELECT (.+) FROM files").WillReturnRows(fileRow(stored))

	_, err := repo.GetFile(context.Background(), "f-1")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestFileRepository_DeleteFile(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectExec("DELETE FROM files WHERE id = \\$1").
		WithArgs("f-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM files").
		WithArgs("f-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteFile(context.Background(), "f-1"))
	assert.ErrorIs(t, repo.DeleteFile(context.Background(), "f-2"), ErrRecordNotFound)
}

func TestFileRepository_QueryFiles_QueryError(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM files").WillReturnError(errors.New("boom"))

	_, err := repo.QueryFiles(context.Background(), models.FileFilter{OwnerID: "u"}, models.OrderByName)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFileRepository_QueryFiles_ScanError(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM files").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("f-1"))

	_, err := repo.QueryFiles(context.Background(), models.FileFilter{OwnerID: "u"}, models.OrderByName)
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── sqlite integration ────────────────────────────────────────────────────────

func TestFileRepository_SQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	files := newSQLiteStore(t).FileRepository

	want := sampleFile("f-1", "alice", models.RootFolderID, "notes.txt")
	want.IsShared = true
	require.NoError(t, files.CreateFile(ctx, want))

	got, err := files.GetFile(ctx, "f-1")
	require.NoError(t, err)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
	got.CreatedAt, got.UpdatedAt = want.CreatedAt, want.UpdatedAt
	assert.Equal(t, want, got)

	assert.ErrorIs(t, files.CreateFile(ctx, want), ErrRecordAlreadyExists)

	require.NoError(t, files.DeleteFile(ctx, "f-1"))
	_, err = files.GetFile(ctx, "f-1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, files.DeleteFile(ctx, "f-1"), ErrRecordNotFound)
}

func TestFileRepository_SQLite_QueryFiles(t *testing.T) {
	ctx := context.Background()
	files := newSQLiteStore(t).FileRepository

	for _, r := range []models.FileRecord{
		sampleFile("3", "alice", "root", "c.txt"),
		sampleFile("1", "alice", "root", "a.txt"),
		sampleFile("2", "alice", "docs", "b.txt"),
		sampleFile("4", "bob", "root", "a.txt"),
	} {
		require.NoError(t, files.CreateFile(ctx, r))
	}

	inRoot, err := files.QueryFiles(ctx, models.FileFilter{OwnerID: "alice", FolderID: "root"}, models.OrderByName)
	require.NoError(t, err)
	require.Len(t, inRoot, 2)
	assert.Equal(t, "a.txt", inRoot[0].Name)
	assert.Equal(t, "c.txt", inRoot[1].Name)

	all, err := files.QueryFiles(ctx, models.FileFilter{OwnerID: "alice"}, models.OrderByName)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := files.QueryFiles(ctx, models.FileFilter{OwnerID: "carol"}, models.OrderByName)
	require.NoError(t, err)
	assert.Empty(t, none)
}
