// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every command. Zero
// values leave the corresponding setting to the environment, the config
// file or the defaults.
type globalFlags struct {
	configPath string

	userID string
	token  string

	dbDriver string
	dsn      string

	blobBackend   string
	blobDir       string
	serverAddress string

	concurrency  int
	bundleFormat int

	publicKey  string
	privateKey string

	logLevel string
	logFile  string
}

func (f *globalFlags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()

	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or TOML config file")
	fs.StringVar(&f.userID, "user", "", "user id (defaults to the token subject)")
	fs.StringVar(&f.token, "token", "", "bearer token for the blob server")
	fs.StringVar(&f.dbDriver, "db-driver", "", "metadata database driver: sqlite3, sqlite or pgx")
	fs.StringVar(&f.dsn, "db", "", "metadata database DSN")
	fs.StringVar(&f.blobBackend, "blob-backend", "", "blob backend: memory, filesystem, s3 or http")
	fs.StringVar(&f.blobDir, "blob-dir", "", "filesystem blob backend directory")
	fs.StringVar(&f.serverAddress, "server", "", "blob server base URL for the http backend")
	fs.IntVar(&f.concurrency, "concurrency", 0, "number of files uploaded at the same time")
	fs.IntVar(&f.bundleFormat, "format", 0, "bundle format for new uploads (1 or 2)")
	fs.StringVar(&f.publicKey, "public-key", "", "public key file")
	fs.StringVar(&f.privateKey, "private-key", "", "encrypted private key file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level")
	fs.StringVar(&f.logFile, "log-file", "", "log file")
}

// overrides converts the flags into a partial config merged over every
// other source.
func (f *globalFlags) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			UserID:       f.userID,
			Token:        f.token,
			LogLevel:     f.logLevel,
			LogFile:      f.logFile,
			BundleFormat: f.bundleFormat,
		},
		Storage: config.Storage{
			DB: config.DB{
				Driver: f.dbDriver,
				DSN:    f.dsn,
			},
			Blob: config.Blob{
				Backend: f.blobBackend,
				Dir:     f.blobDir,
			},
		},
		Adapter: config.Adapter{
			HTTPAddress: f.serverAddress,
		},
		Workers: config.Workers{
			UploadConcurrency: f.concurrency,
		},
		Keys: config.Keys{
			PublicKeyPath:  f.publicKey,
			PrivateKeyPath: f.privateKey,
		},
		ConfigFilePath: f.configPath,
	}
}

// keys returns the key pair paths set on the command line.
func (f *globalFlags) keys() config.Keys {
	return config.Keys{PublicKeyPath: f.publicKey, PrivateKeyPath: f.privateKey}
}
