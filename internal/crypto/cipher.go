// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// keySize is the AES-128 key length taken from the SHA-256 digest.
const keySize = 16

// aesECBCipher is the private implementation of [Cipher].
type aesECBCipher struct {
	newBlock func(key []byte) (cipher.Block, error)
}

// NewCipher constructs the AES-ECB [Cipher].
func NewCipher() Cipher {
	return &aesECBCipher{newBlock: aes.NewCipher}
}

// DeriveKey returns the first 128 bits of SHA-256 over the UTF-8 bytes of
// passphrase.
func DeriveKey(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	return sum[:keySize]
}

// Encrypt implements [Cipher].
func (c *aesECBCipher) Encrypt(plaintext, passphrase string) (string, error) {
	block, err := c.newBlock(DeriveKey(passphrase))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCipherSetup, err)
	}

	padded := pkcs5Pad([]byte(plaintext), block.BlockSize())
	out := make([]byte, len(padded))
	ecbEncrypt(block, out, padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt implements [Cipher].
func (c *aesECBCipher) Decrypt(ciphertext, passphrase string) (string, bool, error) {
	block, err := c.newBlock(DeriveKey(passphrase))
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrCipherSetup, err)
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", false, nil
	}

	plain, err := ecbDecrypt(block, raw)
	if errors.Is(err, errInvalidBlockSize) || errors.Is(err, errInvalidPadding) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return string(plain), true, nil
}
