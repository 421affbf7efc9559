// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
)

// NewConnectSQLite opens the local metadata database. cfg.Driver selects
// the cgo driver (sqlite3) or the pure Go one (sqlite). A DSN of ":memory:"
// keeps everything in memory on a single connection.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverSQLite
	}

	inMemory := cfg.DSN == ":memory:"
	if !inMemory {
		// db will be in file
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// SQLite serialises writers; a single connection also keeps :memory:
	// databases alive across calls.
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("driver", driver).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		driver:             driver,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}

		// if not found - create
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
