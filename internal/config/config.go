// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-vault-guard application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the vault storage backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the breach-check API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Dictionary points the strength calculator at external word lists.
	Dictionary Dictionary `envPrefix:"DICTIONARY_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where the TUI writes its JSON log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// IconDir is the directory the icon resolver looks in for
	// "<host>.png" files.
	// Env: APP_ICON_DIR
	IconDir string `env:"ICON_DIR"`
}

// Storage backends accepted by [Storage.Backend].
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Storage groups the configuration for the vault storage backends.
type Storage struct {
	// Backend is either "file" (one file per account) or "sqlite".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the directory holding vault files for the file backend.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// DB holds the SQLite settings for the sqlite backend.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter configures the leaked-password range API client.
type Adapter struct {
	// BreachAPIURL is the base URL of the k-anonymity range API.
	// Env: ADAPTER_BREACH_API_URL
	BreachAPIURL string `env:"BREACH_API_URL"`

	// RequestTimeout bounds the connectivity probe and the range query.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Dictionary holds optional paths to newline-separated word lists. Empty
// paths select the embedded lists.
type Dictionary struct {
	// Env: DICTIONARY_PASSWORDS_PATH
	PasswordsPath string `env:"PASSWORDS_PATH"`
	// Env: DICTIONARY_WORDS_PATH
	WordsPath string `env:"WORDS_PATH"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// TOTPInterval is the tick period of TOTP streams.
	// Env: WORKERS_TOTP_INTERVAL
	TOTPInterval time.Duration `env:"TOTP_INTERVAL"`
}

// Default values applied to fields left empty by every source.
const (
	DefaultBreachAPIURL   = "https://api.pwnedpasswords.com"
	DefaultRequestTimeout = 5 * time.Second
	DefaultTOTPInterval   = time.Second
	defaultHomeDirName    = ".vault-guard"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from os.Args. See [Load].
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load loads, merges, and validates the application configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source receive their defaults.
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
