// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassphrase  = "correct horse"
	wrongPassphrase = "wrong horse"
)

func TestDeriveKey_TruncatedSHA256(t *testing.T) {
	key := DeriveKey(testPassphrase)

	assert.Len(t, key, 16)
	assert.Equal(t, "4104d36f8da2c254349f85836793ebe0", hex.EncodeToString(key))
}

func TestEncrypt_KnownVector(t *testing.T) {
	c := NewCipher()

	got, err := c.Encrypt("hello", testPassphrase)
	require.NoError(t, err)
	assert.Equal(t, "jGUJvHmZQvsx5jAbXD+pdA==", got)
}

func TestEncrypt_EmptyPlaintextIsOnePaddingBlock(t *testing.T) {
	c := NewCipher()

	got, err := c.Encrypt("", testPassphrase)
	require.NoError(t, err)
	assert.Equal(t, "7TzeyfmW+5VskbkRPr0wVQ==", got)
}

func TestEncrypt_Deterministic(t *testing.T) {
	c := NewCipher()

	first, err := c.Encrypt(`{"accountName":"alice"}`, testPassphrase)
	require.NoError(t, err)
	second, err := c.Encrypt(`{"accountName":"alice"}`, testPassphrase)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "MMTuA+y/pHDJt7h5buvs+ZtvkDH8viRLUYmMg74unoQ=", first)
}

func TestDecrypt_RoundTrip(t *testing.T) {
	c := NewCipher()

	tests := []struct {
		name       string
		plaintext  string
		passphrase string
	}{
		{name: "empty", plaintext: "", passphrase: "p"},
		{name: "short", plaintext: "hello", passphrase: testPassphrase},
		{name: "exact block", plaintext: "0123456789abcdef", passphrase: testPassphrase},
		{name: "unicode", plaintext: "пароль 密码 🔑", passphrase: "ключ"},
		{name: "empty passphrase", plaintext: "data", passphrase: ""},
		{name: "document", plaintext: `{"accountName":"a","accountPassword":"b","entries":[]}`, passphrase: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := c.Encrypt(tt.plaintext, tt.passphrase)
			require.NoError(t, err)

			got, ok, err := c.Decrypt(ct, tt.passphrase)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestDecrypt_WrongPassphraseIsAbsent(t *testing.T) {
	c := NewCipher()

	got, ok, err := c.Decrypt("MMTuA+y/pHDJt7h5buvs+ZtvkDH8viRLUYmMg74unoQ=", wrongPassphrase)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestDecrypt_MalformedIsAbsent(t *testing.T) {
	c := NewCipher()

	tests := []struct {
		name       string
		ciphertext string
	}{
		{name: "not base64", ciphertext: "!!not-base64!!"},
		{name: "empty", ciphertext: ""},
		{name: "partial block", ciphertext: base64.StdEncoding.EncodeToString([]byte("short"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := c.Decrypt(tt.ciphertext, testPassphrase)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestCipher_SetupFailure(t *testing.T) {
	boom := errors.New("no aes")
	c := &aesECBCipher{newBlock: func([]byte) (cipher.Block, error) { return nil, boom }}

	_, err := c.Encrypt("x", "y")
	assert.ErrorIs(t, err, ErrCipherSetup)
	assert.ErrorIs(t, err, boom)

	_, ok, err := c.Decrypt("jGUJvHmZQvsx5jAbXD+pdA==", "y")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCipherSetup)
}

func TestPKCS5Unpad(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    []byte
		wantErr bool
	}{
		{name: "one byte", in: append([]byte("abc"), 1), want: []byte("abc")},
		{name: "full block", in: []byte{4, 4, 4, 4}, want: []byte{}},
		{name: "zero pad byte", in: []byte{'a', 0}, wantErr: true},
		{name: "too large", in: []byte{'a', 17}, wantErr: true},
		{name: "inconsistent", in: []byte{'a', 3, 2, 3}, wantErr: true},
		{name: "empty", in: []byte{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkcs5Unpad(tt.in, 16)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidPadding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
