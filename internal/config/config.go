// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// TestnetInviteCode is the mutinynet test federation invite code that is
// pre-filled into the join form when no other code is configured.
const TestnetInviteCode = "fed11qgqrgvnhwden5te0v9k8q6rp9ekh2arfdeukuet595cr2ttpd3jhq6rzve6zuer9wchxvetyd938gcewvdhk6tcqqysptkuvknc7erjgf4em3zfh90kffqf9srujn6q53d6r056e4apze5cw27h75"

// StructuredConfig is the top-level configuration container for the
// go-fedi-wallet client. It is populated by merging values from environment
// variables, command-line flags, an optional JSON or YAML file and built-in
// defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds front-end settings such as the default invite code.
	App App `envPrefix:"APP_"`

	// Adapter holds the wallet daemon endpoint, credentials and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the location of the local activity journal.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Debug holds the optional local debug HTTP surface settings.
	Debug Debug `envPrefix:"DEBUG_"`

	// Log holds the log file location.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON (or YAML, by extension)
	// configuration file. Populated via the CONFIG environment variable or
	// the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds front-end settings.
type App struct {
	// InviteCode is pre-filled into the join form.
	// Env: APP_INVITE_CODE
	InviteCode string `env:"INVITE_CODE"`
}

// Adapter holds the settings of the wallet daemon transport.
type Adapter struct {
	// HTTPAddress is the wallet daemon base URL or host:port
	// (e.g. "127.0.0.1:3333").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Password is sent as a bearer token on every daemon request.
	// Env: ADAPTER_PASSWORD
	Password string `env:"PASSWORD"`

	// RequestTimeout bounds a single daemon request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// GatewayID pins the Lightning gateway. When empty the first gateway
	// advertised by the federation is used.
	// Env: ADAPTER_GATEWAY_ID
	GatewayID string `env:"GATEWAY_ID"`

	// FederationID pins the federation used for mint and Lightning calls.
	// When empty the daemon's default (first joined) federation is used.
	// Env: ADAPTER_FEDERATION_ID
	FederationID string `env:"FEDERATION_ID"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// DB holds the activity journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite file path (e.g. "wallet.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BalanceInterval is how often the balance watcher polls the daemon.
	// Env: WORKERS_BALANCE_INTERVAL
	BalanceInterval time.Duration `env:"BALANCE_INTERVAL"`
}

// Debug holds the debug HTTP surface settings.
type Debug struct {
	// HTTPAddress is the host:port the debug API listens on. Empty disables
	// the debug API.
	// Env: DEBUG_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the JSON log file. Empty means fedi-wallet.log
	// next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			InviteCode: TestnetInviteCode,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://127.0.0.1:3333",
			RequestTimeout: time.Minute,
		},
		Storage: Storage{
			DB: DB{DSN: "fedi-wallet.db"},
		},
		Workers: Workers{
			BalanceInterval: 5 * time.Second,
		},
	}
}
