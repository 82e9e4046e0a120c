// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists encrypted vault documents.
//
// Every record is addressed by the SHA-1 digest of the account name, so the
// cleartext name never appears in file names or database keys. Two backends
// implement [VaultStorage]: one file per account in a directory, and a
// single SQLite table.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_storage_mock.go -package=mock

// VaultStorage stores one opaque text blob per account. All faults wrap
// [ErrStorageFailure]; a missing record is never an error.
type VaultStorage interface {
	// Create makes an empty record for accountName. It returns false and a
	// nil error when a record already exists.
	Create(ctx context.Context, accountName string) (bool, error)
	// Write replaces the record of accountName with content.
	Write(ctx context.Context, content, accountName string) error
	// Read returns the record of accountName. ok is false when there is none.
	Read(ctx context.Context, accountName string) (content string, ok bool, err error)
	// Delete removes the record of accountName if it exists.
	Delete(ctx context.Context, accountName string) error
}
