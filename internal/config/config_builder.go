// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

// build merges the collected configs in order; later non-zero fields win.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withConfig appends an already built config, used for client overrides
// coming from cobra flags.
func (b *configBuilder) withConfig(cfg *StructuredConfig) *configBuilder {
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

// withFile loads the config file named by the most recent source that sets
// ConfigFilePath.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, fileCfg)
	return b
}
