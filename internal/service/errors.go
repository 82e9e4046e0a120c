package service

import "errors"

var (
	// ErrEncryptionFailure is returned by Save when the document cannot be
	// encrypted.
	ErrEncryptionFailure = errors.New("failed to encrypt vault document")

	// ErrCorruptDocument is returned by Login when the decrypted record is
	// not a vault document.
	ErrCorruptDocument = errors.New("vault document is corrupt")

	ErrEntryNotFound   = errors.New("entry not found")
	ErrNameTaken       = errors.New("account name is already taken")
	ErrWrongPassphrase = errors.New("wrong passphrase")
	ErrNotLoggedIn     = errors.New("no account is open")
)
