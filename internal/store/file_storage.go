// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/utils"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// fileStorage keeps each account in <dir>/<sha1(name)>.
type fileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileStorage returns a [VaultStorage] rooted at dir, creating the
// directory with owner-only permissions when it does not exist.
func NewFileStorage(dir string, logger *logger.Logger) (VaultStorage, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: failed to create vault directory: %w", ErrStorageFailure, err)
	}
	return &fileStorage{dir: dir, logger: logger}, nil
}

func (f *fileStorage) path(accountName string) string {
	return filepath.Join(f.dir, utils.DigestString(accountName))
}

func (f *fileStorage) Create(ctx context.Context, accountName string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: failed to create record: %w", ErrStorageFailure, err)
	}

	file, err := os.OpenFile(f.path(accountName), os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		f.logger.Err(err).Str("func", "fileStorage.Create").Msg("failed to create vault file")
		return false, fmt.Errorf("%w: failed to create record: %w", ErrStorageFailure, err)
	}
	if err = file.Close(); err != nil {
		return false, fmt.Errorf("%w: failed to create record: %w", ErrStorageFailure, err)
	}
	return true, nil
}

// Write replaces the file through a temporary file and a rename, so a
// reader never sees a partial document.
func (f *fileStorage) Write(ctx context.Context, content, accountName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: failed to write record: %w", ErrStorageFailure, err)
	}

	tmp, err := os.CreateTemp(f.dir, ".vault-*")
	if err != nil {
		f.logger.Err(err).Str("func", "fileStorage.Write").Msg("failed to create temporary file")
		return fmt.Errorf("%w: failed to write record: %w", ErrStorageFailure, err)
	}
	defer os.Remove(tmp.Name())

	if err = tmp.Chmod(filePerm); err == nil {
		_, err = tmp.WriteString(content)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		f.logger.Err(err).Str("func", "fileStorage.Write").Msg("failed to write temporary file")
		return fmt.Errorf("%w: failed to write record: %w", ErrStorageFailure, err)
	}

	if err = os.Rename(tmp.Name(), f.path(accountName)); err != nil {
		f.logger.Err(err).Str("func", "fileStorage.Write").Msg("failed to replace vault file")
		return fmt.Errorf("%w: failed to write record: %w", ErrStorageFailure, err)
	}
	return nil
}

func (f *fileStorage) Read(ctx context.Context, accountName string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("%w: failed to read record: %w", ErrStorageFailure, err)
	}

	data, err := os.ReadFile(f.path(accountName))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		f.logger.Err(err).Str("func", "fileStorage.Read").Msg("failed to read vault file")
		return "", false, fmt.Errorf("%w: failed to read record: %w", ErrStorageFailure, err)
	}
	return string(data), true, nil
}

func (f *fileStorage) Delete(ctx context.Context, accountName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: failed to delete record: %w", ErrStorageFailure, err)
	}

	err := os.Remove(f.path(accountName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		f.logger.Err(err).Str("func", "fileStorage.Delete").Msg("failed to delete vault file")
		return fmt.Errorf("%w: failed to delete record: %w", ErrStorageFailure, err)
	}
	return nil
}
