// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no file or folder record has the
	// requested id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordAlreadyExists is returned when an insert collides with an
	// existing id.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrInvalidRecord is returned for records missing required fields or
	// carrying an unsupported schema version, both on write and on read.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrFolderInUse is returned by DeleteFolder when a subfolder or file
	// still references the folder at the time of the delete.
	ErrFolderInUse = errors.New("folder still has children")

	// ErrUnsupportedDriver is returned by [NewConnect] for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
