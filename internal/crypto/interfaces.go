// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the passphrase-derived symmetric encryption of
// vault documents.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts and decrypts opaque text blobs under a passphrase.
//
// The scheme is fixed: the key is the first 128 bits of SHA-256(passphrase),
// the cipher is AES in electronic-codebook mode with PKCS#5 padding and the
// ciphertext travels as standard base64. Encryption is deterministic and
// carries no integrity tag.
type Cipher interface {
	// Encrypt derives the key from passphrase, encrypts the UTF-8 bytes of
	// plaintext and returns the base64 ciphertext. Returns [ErrCipherSetup]
	// (wrapped) if the block cipher cannot be constructed.
	Encrypt(plaintext, passphrase string) (string, error)

	// Decrypt reverses Encrypt. ok is false with a nil error when the
	// ciphertext does not decode, is not a whole number of blocks or has
	// invalid padding. This is how a wrong passphrase shows up: the two causes
	// are deliberately not told apart. A non-nil error is a cipher setup
	// failure.
	Decrypt(ciphertext, passphrase string) (plaintext string, ok bool, err error)
}
