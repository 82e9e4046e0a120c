// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrCipherSetup is returned when the block cipher cannot be constructed
// from the derived key. It is a configuration fault, distinct from a wrong
// passphrase.
var ErrCipherSetup = errors.New("cipher setup failed")

// errInvalidPadding and errInvalidBlockSize are internal decrypt outcomes that
// Decrypt folds into ok == false.
var (
	errInvalidPadding   = errors.New("invalid padding")
	errInvalidBlockSize = errors.New("ciphertext is not a multiple of the block size")
)
