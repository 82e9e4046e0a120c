package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	vaultFilesTable = "vault_files"
	keyColumn       = "key"
	contentColumn   = "content"
)

// sqlite uses ? placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildCreateQuery(key string) (string, []any, error) {
	return psql.
		Insert(vaultFilesTable).
		Columns(keyColumn, contentColumn).
		Values(key, "").
		Suffix("ON CONFLICT(" + keyColumn + ") DO NOTHING").
		ToSql()
}

func buildInsertQuery(key, content string) (string, []any, error) {
	return psql.
		Insert(vaultFilesTable).
		Columns(keyColumn, contentColumn).
		Values(key, content).
		ToSql()
}

func buildSelectQuery(key string) (string, []any, error) {
	return psql.
		Select(contentColumn).
		From(vaultFilesTable).
		Where(sq.Eq{keyColumn: key}).
		ToSql()
}

func buildDeleteQuery(key string) (string, []any, error) {
	return psql.
		Delete(vaultFilesTable).
		Where(sq.Eq{keyColumn: key}).
		ToSql()
}
