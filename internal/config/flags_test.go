// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":8443",
			expectedAddr: NetAddress{Port: 8443},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "port too large",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-blob-backend", "s3",
				"-blob-dir", "/var/blobs",
				"-s3-bucket", "vault",
				"-s3-endpoint", "http://minio:9000",
				"-c", "/path/to/config.toml",
				"-token-sign-key", "jwt_secret",
				"-token-issuer", "test_issuer",
				"-request-timeout", "30s",
				"-max-blob-size", "2048",
				"-log-level", "warn",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, BlobBackendS3, cfg.Storage.Blob.Backend)
				assert.Equal(t, "/var/blobs", cfg.Storage.Blob.Dir)
				assert.Equal(t, "vault", cfg.Storage.Blob.S3.Bucket)
				assert.Equal(t, "http://minio:9000", cfg.Storage.Blob.S3.Endpoint)
				assert.Equal(t, "/path/to/config.toml", cfg.ConfigFilePath)
				assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
				assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, int64(2048), cfg.Server.MaxBlobSize)
				assert.Equal(t, "warn", cfg.App.LogLevel)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.ConfigFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	for _, args := range [][]string{
		{"-a", "invalid"},
		{"-a", "localhost:abc"},
		{"-request-timeout", "soon"},
	} {
		_, err := ParseFlags(args)
		assert.Error(t, err, "%v", args)
	}
}
