package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-guard/internal/config"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
)

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	// VaultStorage is the backend selected by config.
	VaultStorage VaultStorage

	db *DB
}

// NewStorages initialises the backend named by cfg.Backend:
//   - "file": a directory of vault files at cfg.Dir.
//   - "sqlite": opens cfg.DB.DSN, creating the file when needed, and runs
//     pending schema migrations via [DB.Migrate].
//
// Returns an error if the backend is unknown or cannot be initialised.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.BackendFile, "":
		vs, err := NewFileStorage(cfg.Dir, logger)
		if err != nil {
			return nil, err
		}
		return &Storages{VaultStorage: vs}, nil

	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{VaultStorage: NewSQLiteStorage(db, logger), db: db}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
