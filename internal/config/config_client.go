// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// UserID is the owner identity stamped on every record.
	UserID string
	// Token is the bearer token presented to a remote blob server.
	Token string
	// LogLevel and LogFile configure the client file logger.
	LogLevel string
	LogFile  string
	// BundleFormat is the seal format for new uploads.
	BundleFormat int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter Adapter
	Storage Storage
	Workers Workers
	Keys    Keys
}

// GetClientConfig builds and validates the client configuration.
//
// Sources are merged as defaults, environment, the config file and finally
// overrides, which carries values of explicitly set command-line flags.
// configPath takes precedence over CONFIG and overrides.ConfigFilePath.
func GetClientConfig(configPath string, overrides *StructuredConfig) (*ClientConfig, error) {
	pathCfg := &StructuredConfig{ConfigFilePath: configPath}
	if overrides != nil && configPath == "" {
		pathCfg.ConfigFilePath = overrides.ConfigFilePath
	}

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withConfig(pathCfg).
		withFile().
		withConfig(overrides).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			UserID:       cfg.App.UserID,
			Token:        cfg.App.Token,
			LogLevel:     cfg.App.LogLevel,
			LogFile:      cfg.App.LogFile,
			BundleFormat: cfg.App.BundleFormat,
		},
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
		Keys:    cfg.Keys,
	}

	return clientCfg, clientCfg.validate()
}
