// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the environment into a fresh [StructuredConfig]. Variable
// names are the envPrefix chain plus the env tag, e.g. STORAGE_BLOB_BACKEND
// or APP_TOKEN. Unset variables leave zero values, which the builder treats
// as "not configured".
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
