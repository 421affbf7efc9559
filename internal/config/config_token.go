package config

import (
	"fmt"
	"time"
)

// TokenConfig holds the settings `safeshare token` needs to mint a bearer
// token that a blob server configured with the same sign key accepts.
type TokenConfig struct {
	Issuer   string
	SignKey  string
	Duration time.Duration
}

// GetTokenConfig merges defaults, environment, the config file and
// overrides the same way [GetClientConfig] does, keeping only the token
// settings.
func GetTokenConfig(configPath string, overrides *StructuredConfig) (*TokenConfig, error) {
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

	tokenCfg := &TokenConfig{
		Issuer:   cfg.App.TokenIssuer,
		SignKey:  cfg.App.TokenSignKey,
		Duration: cfg.App.TokenDuration,
	}
	if tokenCfg.SignKey == "" || tokenCfg.Issuer == "" || tokenCfg.Duration <= 0 {
		return nil, fmt.Errorf("%w: token sign key, issuer and a positive duration are required", ErrInvalidAppConfigs)
	}

	return tokenCfg, nil
}
