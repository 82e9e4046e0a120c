// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
)

// ErrInvalidInput is returned by Digest when no text is supplied.
var ErrInvalidInput = errors.New("invalid input: text is nil")

// Digest computes the lowercase hex SHA-1 digest of the UTF-8 bytes of text.
//
// The digest is used to derive stable file names from account names; it is
// not used to protect secrets. A nil text fails with [ErrInvalidInput], an
// empty text is valid and yields the digest of the empty byte sequence.
//
// Example usage:
//
//	key, err := utils.Digest(&accountName)
func Digest(text *string) (string, error) {
	if text == nil {
		return "", ErrInvalidInput
	}
	return DigestString(*text), nil
}

// DigestString is the non-nil form of [Digest].
func DigestString(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
