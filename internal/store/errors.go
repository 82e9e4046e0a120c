package store

import "errors"

// ErrStorageFailure is wrapped by every error a [VaultStorage] returns.
// Callers should use [errors.Is] to match against it.
var ErrStorageFailure = errors.New("storage failure")

// Low-level database operation errors. These are wrapped together with
// [ErrStorageFailure] by the SQLite backend when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

// ErrUnknownBackend is returned by [NewStorages] for an unsupported
// backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")
