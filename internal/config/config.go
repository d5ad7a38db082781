// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// case-mirror application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds connection settings for the authoritative remote case
	// service.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local mirror store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds everything needed to talk to the remote case service, which
// is the single source of truth for all mirrored cases.
type Remote struct {
	// BaseURI is the root URL of the remote case service
	// (e.g. "https://remote.example.com/api/v1").
	// Env: REMOTE_BASE_URI
	BaseURI string `env:"BASE_URI"`

	// APIUser is the user half of the "apikey user:key" Authorization
	// header sent on every remote call.
	// Env: REMOTE_API_USER
	APIUser string `env:"API_USER"`

	// APIKey is the secret half of the Authorization header.
	// Must be kept confidential.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout is the per-request timeout for remote calls (e.g. "30s").
	// Env: REMOTE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// PageLimit is the page size used when listing remote cases.
	// Env: REMOTE_PAGE_LIMIT
	PageLimit int `env:"PAGE_LIMIT"`
}

// Storage groups the configuration for the local mirror store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the mirror database backend.
type DB struct {
	// Driver selects the database backend: "sqlite3" (default) or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the Data Source Name used to open the database connection.
	// For sqlite3 this is a file path (e.g. "cases.db"); for pgx a
	// PostgreSQL connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds the settings for the HTTP server exposing the write API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period between two reconciliation cycles
	// (e.g. "5s", "1m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
