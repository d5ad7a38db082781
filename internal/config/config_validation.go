// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	// DefaultSyncInterval is used when no sync interval is configured.
	DefaultSyncInterval = 5 * time.Second

	// DefaultPageLimit is the remote listing page size used when none is
	// configured.
	DefaultPageLimit = 1000

	// DefaultRemoteTimeout bounds a single remote request when no timeout
	// is configured.
	DefaultRemoteTimeout = 30 * time.Second

	// DefaultDBDriver selects the embedded sqlite backend when no driver
	// is configured.
	DefaultDBDriver = "sqlite3"

	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = ":8080"
)

// applyDefaults fills zero-valued optional fields with their defaults.
// Required fields (remote URI, credentials, DSN) are left untouched so that
// validate can reject an incomplete configuration.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Remote.PageLimit <= 0 {
		cfg.Remote.PageLimit = DefaultPageLimit
	}
	if cfg.Remote.Timeout <= 0 {
		cfg.Remote.Timeout = DefaultRemoteTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
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
	if cfg.Remote.BaseURI == "" {
		return fmt.Errorf("%w: remote base URI is required", ErrInvalidRemoteConfigs)
	}
	if cfg.Remote.APIUser == "" || cfg.Remote.APIKey == "" {
		return fmt.Errorf("%w: remote API credentials are required", ErrInvalidRemoteConfigs)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if driver := cfg.Storage.DB.Driver; driver != "sqlite3" && driver != "pgx" {
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidStorageConfigs, driver)
	}

	return nil
}
