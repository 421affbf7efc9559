// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors [StructuredConfig] for JSON and TOML files. Durations
// are written as strings such as "30s".
type fileConfig struct {
	App struct {
		UserID        string   `json:"user_id" toml:"user_id"`
		Token         string   `json:"token" toml:"token"`
		TokenSignKey  string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" toml:"token_duration"`
		Version       string   `json:"version" toml:"version"`
		LogLevel      string   `json:"log_level" toml:"log_level"`
		LogFile       string   `json:"log_file" toml:"log_file"`
		BundleFormat  int      `json:"bundle_format" toml:"bundle_format"`
	} `json:"app" toml:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" toml:"driver"`
			DSN    string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`

		Blob struct {
			Backend string `json:"backend" toml:"backend"`
			Dir     string `json:"dir" toml:"dir"`
			S3      struct {
				Bucket       string `json:"bucket" toml:"bucket"`
				Region       string `json:"region" toml:"region"`
				Endpoint     string `json:"endpoint" toml:"endpoint"`
				AccessKey    string `json:"access_key" toml:"access_key"`
				SecretKey    string `json:"secret_key" toml:"secret_key"`
				UsePathStyle bool   `json:"use_path_style" toml:"use_path_style"`
			} `json:"s3" toml:"s3"`
		} `json:"blob" toml:"blob"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		MaxBlobSize    int64    `json:"max_blob_size" toml:"max_blob_size"`
	} `json:"server" toml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" toml:"adapter"`

	Workers struct {
		UploadConcurrency int `json:"upload_concurrency" toml:"upload_concurrency"`
	} `json:"workers" toml:"workers"`

	Keys struct {
		PublicKeyPath  string `json:"public_key_path" toml:"public_key_path"`
		PrivateKeyPath string `json:"private_key_path" toml:"private_key_path"`
	} `json:"keys" toml:"keys"`
}

// parseFile reads a config file, choosing the decoder by extension.
func parseFile(path string) (*StructuredConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(path)
	case ".toml":
		return parseTOML(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, path)
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fc fileConfig
	if err = json.NewDecoder(jsonFile).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fc.toStructured(), nil
}

func parseTOML(path string) (*StructuredConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			UserID:        fc.App.UserID,
			Token:         fc.App.Token,
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			Version:       fc.App.Version,
			LogLevel:      fc.App.LogLevel,
			LogFile:       fc.App.LogFile,
			BundleFormat:  fc.App.BundleFormat,
		},
		Storage: Storage{
			DB: DB{
				Driver: fc.Storage.DB.Driver,
				DSN:    fc.Storage.DB.DSN,
			},
			Blob: Blob{
				Backend: fc.Storage.Blob.Backend,
				Dir:     fc.Storage.Blob.Dir,
				S3: S3{
					Bucket:       fc.Storage.Blob.S3.Bucket,
					Region:       fc.Storage.Blob.S3.Region,
					Endpoint:     fc.Storage.Blob.S3.Endpoint,
					AccessKey:    fc.Storage.Blob.S3.AccessKey,
					SecretKey:    fc.Storage.Blob.S3.SecretKey,
					UsePathStyle: fc.Storage.Blob.S3.UsePathStyle,
				},
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			MaxBlobSize:    fc.Server.MaxBlobSize,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Workers: Workers{
			UploadConcurrency: fc.Workers.UploadConcurrency,
		},
		Keys: Keys{
			PublicKeyPath:  fc.Keys.PublicKeyPath,
			PrivateKeyPath: fc.Keys.PrivateKeyPath,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML.
type Duration time.Duration

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText parses a Go duration string. TOML decodes through it.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
