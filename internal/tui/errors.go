// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-vault-guard/internal/adapter"
	"github.com/MKhiriev/go-vault-guard/internal/generator"
	"github.com/MKhiriev/go-vault-guard/internal/service"
	"github.com/MKhiriev/go-vault-guard/internal/store"
	"github.com/MKhiriev/go-vault-guard/internal/totp"
	"github.com/MKhiriev/go-vault-guard/internal/validators"
)

// ErrUserQuit is returned by Run when the user leaves the application.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns a service error into a message for the error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNameTaken):
		return "This account name is already taken"
	case errors.Is(err, service.ErrWrongPassphrase):
		return "The current passphrase is wrong"
	case errors.Is(err, service.ErrEntryNotFound):
		return "The entry no longer exists"
	case errors.Is(err, service.ErrEncryptionFailure):
		return "The vault could not be encrypted"
	case errors.Is(err, service.ErrCorruptDocument):
		return "The vault file is damaged"
	case errors.Is(err, service.ErrNotLoggedIn):
		return "No account is open"
	case errors.Is(err, store.ErrStorageFailure):
		return "The vault could not be read or written"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "The breach service is limiting requests, try again later"
	case errors.Is(err, totp.ErrInvalidSeed), errors.Is(err, validators.ErrInvalidOTPSeed):
		return "The one-time password seed is not valid base32"
	case errors.Is(err, generator.ErrInvalidLength), errors.Is(err, validators.ErrInvalidLength):
		return "Password length must be between 4 and 128"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The network or the breach service is unavailable"
	}

	return err.Error()
}
