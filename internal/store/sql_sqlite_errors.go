// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for both SQLite
// drivers: mattn/go-sqlite3 and modernc.org/sqlite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify treats SQLITE_BUSY and SQLITE_LOCKED as [Retryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var cgoErr sqlite3.Error
	if errors.As(err, &cgoErr) {
		if cgoErr.Code == sqlite3.ErrBusy || cgoErr.Code == sqlite3.ErrLocked {
			return Retryable
		}
		return NonRetryable
	}

	var pureErr *sqlite.Error
	if errors.As(err, &pureErr) {
		// low byte is the primary result code
		switch pureErr.Code() & 0xff {
		case sqlitelib.SQLITE_BUSY, sqlitelib.SQLITE_LOCKED:
			return Retryable
		}
	}

	return NonRetryable
}

func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var cgoErr sqlite3.Error
	if errors.As(err, &cgoErr) {
		return cgoErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			cgoErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pureErr *sqlite.Error
	if errors.As(err, &pureErr) {
		switch pureErr.Code() {
		case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlitelib.SQLITE_CONSTRAINT:
			return strings.Contains(pureErr.Error(), "UNIQUE constraint failed")
		}
	}

	return false
}
