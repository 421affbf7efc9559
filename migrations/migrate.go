// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the metadata schema for every supported SQL
// dialect and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialects accepted by Migrate. They match the database/sql driver names.
const (
	DialectPostgres   = "pgx"
	DialectSQLite     = "sqlite3"
	DialectSQLitePure = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its settings in package globals
var mu sync.Mutex

// ErrUnsupportedDialect is returned for driver names without migrations.
var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// Migrate applies all pending migrations for dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, gooseDialect, err := resolve(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err = goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func resolve(dialect string) (dir, gooseDialect string, err error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", "postgres", nil
	case DialectSQLite, DialectSQLitePure:
		return "sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}
