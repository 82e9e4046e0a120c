// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/cipher"
)

// ecbEncrypt encrypts src block by block into dst. len(src) must be a
// multiple of the block size.
func ecbEncrypt(block cipher.Block, dst, src []byte) {
	size := block.BlockSize()
	for i := 0; i < len(src); i += size {
		block.Encrypt(dst[i:i+size], src[i:i+size])
	}
}

// ecbDecrypt decrypts src and strips the PKCS#5 padding.
func ecbDecrypt(block cipher.Block, src []byte) ([]byte, error) {
	size := block.BlockSize()
	if len(src) == 0 || len(src)%size != 0 {
		return nil, errInvalidBlockSize
	}

	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += size {
		block.Decrypt(dst[i:i+size], src[i:i+size])
	}

	return pkcs5Unpad(dst, size)
}

func pkcs5Pad(data []byte, size int) []byte {
	n := size - len(data)%size
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs5Unpad(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > size || n > len(data) {
		return nil, errInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errInvalidPadding
		}
	}

	return data[:len(data)-n], nil
}
