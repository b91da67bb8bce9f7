// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to the merged configuration when the corresponding
// fields were not provided by any source.
const (
	// DefaultTokenIssuer is the "iss" claim used when no issuer is configured.
	DefaultTokenIssuer = "go-auth-guard"

	// DefaultTokenDuration is the token TTL used when none is configured.
	DefaultTokenDuration = time.Hour

	// DefaultPasswordHashCost matches bcrypt.DefaultCost. The crypto
	// package clamps out-of-range values, so the constant is kept here
	// only to avoid a zero cost reaching the hasher.
	DefaultPasswordHashCost = 10

	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = ":8080"
)

// applyDefaults fills zero-valued optional fields of the merged configuration.
// The token signing key and the database DSN have no defaults: both are
// secrets/environment-specific and must be provided explicitly.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
