package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAccountName = errors.New("account name is required")
	ErrEmptyPassphrase  = errors.New("passphrase is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidOTPSeed   = errors.New("one-time password seed is not valid base32")
	ErrInvalidLength    = errors.New("password length is out of range")
	ErrNoCharacters     = errors.New("every character is forbidden")
)
