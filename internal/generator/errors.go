package generator

import "errors"

// ErrInvalidLength is returned when the requested length is below MinLength.
var ErrInvalidLength = errors.New("password length must be at least 4 characters")
