// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Blob storage backends understood by [Blob.Backend].
const (
	BlobBackendMemory     = "memory"
	BlobBackendFilesystem = "filesystem"
	BlobBackendS3         = "s3"
	BlobBackendHTTP       = "http"
)

// Database drivers understood by [DB.Driver].
const (
	DriverSQLite     = "sqlite3"
	DriverSQLitePure = "sqlite"
	DriverPostgres   = "pgx"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON or TOML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity, token and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the metadata database and blob store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the blob server listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side settings for reaching a remote blob
	// server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds upload concurrency settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Keys locates the optional key-wrapping identity.
	Keys Keys `envPrefix:"KEYS_"`

	// ConfigFilePath is the optional path to a JSON or TOML configuration
	// file, selected by extension.
	// Env: CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UserID is the opaque user identity. When empty the client takes it
	// from the "sub" claim of Token.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// Token is the bearer token issued by the authentication provider.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// TokenSignKey is the secret used by the blob server to verify tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by `safeshare token`
	// style tooling and tests.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by the blob server version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the client log destination.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// BundleFormat selects the seal format for new uploads (1 or 2).
	// Env: APP_BUNDLE_FORMAT
	BundleFormat int `env:"BUNDLE_FORMAT"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB   DB   `envPrefix:"DB_"`
	Blob Blob `envPrefix:"BLOB_"`
}

// DB holds connection settings for the metadata database.
type DB struct {
	// Driver is DriverSQLite (cgo), DriverSQLitePure or DriverPostgres.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the driver specific data source name: a file path for SQLite,
	// a postgres:// URL for Postgres.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Blob selects and configures the ciphertext store.
type Blob struct {
	// Backend is one of the BlobBackend* constants.
	// Env: STORAGE_BLOB_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the root directory of the filesystem backend.
	// Env: STORAGE_BLOB_DIR
	Dir string `env:"DIR"`

	S3 S3 `envPrefix:"S3_"`
}

// S3 holds settings for an S3 compatible object store.
type S3 struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// UsePathStyle addresses objects as endpoint/bucket/key, which MinIO
	// needs.
	UsePathStyle bool `env:"USE_PATH_STYLE"`
}

// Server holds listener settings for the blob server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBlobSize caps the accepted upload body in bytes.
	// Env: SERVER_MAX_BLOB_SIZE
	MaxBlobSize int64 `env:"MAX_BLOB_SIZE"`
}

// Adapter holds outbound settings for the HTTP blob backend.
type Adapter struct {
	// HTTPAddress is the blob server base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds upload pipeline settings.
type Workers struct {
	// UploadConcurrency is the number of files sealed and uploaded at the
	// same time. 1 processes files strictly one after another.
	// Env: WORKERS_UPLOAD_CONCURRENCY
	UploadConcurrency int `env:"UPLOAD_CONCURRENCY"`
}

// Keys locates the age identity used for key wrapping.
type Keys struct {
	PublicKeyPath  string `env:"PUBLIC_KEY_PATH"`
	PrivateKeyPath string `env:"PRIVATE_KEY_PATH"`
}

// Defaults returns the baseline configuration every other source is merged
// over.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-safe-share",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
			BundleFormat:  2,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "safeshare.db",
			},
			Blob: Blob{
				Backend: BlobBackendFilesystem,
				Dir:     "blobs",
			},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
			MaxBlobSize:    512 << 20,
		},
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			UploadConcurrency: 1,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the blob server
// configuration in the following priority order (last source wins for
// non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (args)
//  4. JSON or TOML file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
