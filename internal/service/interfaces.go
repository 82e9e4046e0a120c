// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the vault engine: the account session state machine,
// the in-memory vault model and the account settings built on top of them.
//
// Services depend on the cipher, storage, breach checker and event publisher
// through interfaces so that tests can replace every collaborator with a
// gomock double from internal/mock.
package service

import (
	"context"

	"github.com/MKhiriev/go-vault-guard/models"
)

// AccountSession is the login state machine of the single local user.
//
// Every call publishes an events.SessionStateChanged carrying the outcome,
// including outcomes (AUTH_FAILED, NAME_TAKEN, SYSTEM_ERROR) that never
// become the durable state.
type AccountSession interface {
	// Login opens the vault of name with pass. On LOGGED_IN the decrypted
	// document is returned. A non-nil error is only returned together with
	// SYSTEM_ERROR.
	Login(ctx context.Context, name, pass string) (models.SessionState, models.VaultDocument, error)

	// Signup creates an empty vault for name. NAME_TAKEN is returned when a
	// record already exists; a half-created record is removed on failure.
	Signup(ctx context.Context, name, pass string) (models.SessionState, models.VaultDocument, error)

	// Logout returns to LOGGED_OUT without persisting anything.
	Logout() models.SessionState

	// State returns the durable state: LOGGED_OUT or LOGGED_IN.
	State() models.SessionState

	// SessionID returns the correlation ID of the current login, or an empty
	// string when logged out.
	SessionID() string
}

// AccountSettings edits the identity of the open account. Every successful
// call except DeleteAccount ends with a save.
type AccountSettings interface {
	// Rename moves the vault to newName and sets newPassword when it is not
	// empty. ErrNameTaken is returned when newName already has a record.
	Rename(ctx context.Context, newName, newPassword string) error

	// ChangePassword re-encrypts the vault under next after checking current
	// against the stored passphrase.
	ChangePassword(ctx context.Context, current, next string) error

	// DeleteAccount logs out and removes the storage record.
	DeleteAccount(ctx context.Context) error
}
