package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/utils"
)

type sqliteStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteStorage returns a [VaultStorage] over the vault_files table of db.
// The schema must already be migrated.
func NewSQLiteStorage(db *DB, logger *logger.Logger) VaultStorage {
	return &sqliteStorage{db: db, logger: logger}
}

func (s *sqliteStorage) Create(ctx context.Context, accountName string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateQuery(utils.DigestString(accountName))
	if err != nil {
		return false, fmt.Errorf("%w: failed to create record: %w: %w", ErrStorageFailure, ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.Create").Msg("failed to insert vault record")
		return false, fmt.Errorf("%w: failed to create record: %w: %w", ErrStorageFailure, ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: failed to create record: %w", ErrStorageFailure, err)
	}
	return affected > 0, nil
}

func (s *sqliteStorage) Write(ctx context.Context, content, accountName string) error {
	log := logger.FromContext(ctx)
	key := utils.DigestString(accountName)

	deleteQuery, deleteArgs, err := buildDeleteQuery(key)
	if err != nil {
		return fmt.Errorf("%w: failed to write record: %w: %w", ErrStorageFailure, ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertQuery(key, content)
	if err != nil {
		return fmt.Errorf("%w: failed to write record: %w: %w", ErrStorageFailure, ErrBuildingSQLQuery, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.Write").Msg("failed to begin transaction")
		return fmt.Errorf("%w: failed to write record: %w: %w", ErrStorageFailure, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "sqliteStorage.Write").Msg("failed to delete previous vault record")
		return fmt.Errorf("%w: failed to write record: %w: %w", ErrStorageFailure, ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Str("func", "sqliteStorage.Write").Msg("failed to insert vault record")
		return fmt.Errorf("%w: failed to write record: %w: %w", ErrStorageFailure, ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqliteStorage.Write").Msg("failed to commit transaction")
		return fmt.Errorf("%w: failed to write record: %w: %w", ErrStorageFailure, ErrCommitingTransaction, err)
	}
	return nil
}

func (s *sqliteStorage) Read(ctx context.Context, accountName string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuery(utils.DigestString(accountName))
	if err != nil {
		return "", false, fmt.Errorf("%w: failed to read record: %w: %w", ErrStorageFailure, ErrBuildingSQLQuery, err)
	}

	var content string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.Read").Msg("failed to query vault record")
		return "", false, fmt.Errorf("%w: failed to read record: %w: %w", ErrStorageFailure, ErrExecutingQuery, err)
	}
	return content, true, nil
}

func (s *sqliteStorage) Delete(ctx context.Context, accountName string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(utils.DigestString(accountName))
	if err != nil {
		return fmt.Errorf("%w: failed to delete record: %w: %w", ErrStorageFailure, ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteStorage.Delete").Msg("failed to delete vault record")
		return fmt.Errorf("%w: failed to delete record: %w: %w", ErrStorageFailure, ErrExecutingStatement, err)
	}
	return nil
}
