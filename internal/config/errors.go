// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid blob server client settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid database or blob store
	// settings (for example, empty DSN or an unknown backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, no user identity).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid upload worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates invalid blob server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrUnsupportedConfigFormat is returned for config files that are
	// neither .json nor .toml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
