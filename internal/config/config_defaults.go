// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

// applyDefaults fills every field that no source has set. Paths default to
// ~/.vault-guard, or ./.vault-guard when the home directory is unknown.
func (cfg *StructuredConfig) applyDefaults() {
	home := defaultHomeDirName
	if userHome, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(userHome, defaultHomeDirName)
	}

	if cfg.App.LogFile == "" {
		cfg.App.LogFile = filepath.Join(home, "vault-guard.log")
	}
	if cfg.App.IconDir == "" {
		cfg.App.IconDir = filepath.Join(home, "icons")
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendFile
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = filepath.Join(home, "vaults")
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.Storage.Dir, "vault.db")
	}
	if cfg.Adapter.BreachAPIURL == "" {
		cfg.Adapter.BreachAPIURL = DefaultBreachAPIURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.TOTPInterval == 0 {
		cfg.Workers.TOTPInterval = DefaultTOTPInterval
	}
}
