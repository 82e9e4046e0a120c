// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application rules before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid...
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendFile:
		if strings.TrimSpace(cfg.Storage.Dir) == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.BreachAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TOTPInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
