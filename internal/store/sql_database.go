// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/migrations"
)

// sqliteTimeLayout is fixed width so that TEXT columns sort chronologically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DB wraps a *sql.DB together with the dialect specific pieces the
// repositories need: placeholder format, error classification and the
// timestamp encoding.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the metadata database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite, config.DriverSQLitePure:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// timestamp converts t into the value stored in created_at/updated_at.
func (db *DB) timestamp(t time.Time) any {
	if db.driver == config.DriverPostgres {
		return t.UTC()
	}
	return t.UTC().Format(sqliteTimeLayout)
}

// dbTime scans both native timestamps and the SQLite text encoding.
type dbTime struct {
	time.Time
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *dbTime) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}
