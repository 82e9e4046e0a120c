// Package totp produces RFC 6238 one-time codes (30s step, 6 digits,
// HMAC-SHA1) from base32 seeds and streams them to a consumer.
package totp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	// Period is the TOTP time step in seconds.
	Period = 30
	// Digits is the length of a generated code.
	Digits = otp.DigitsSix

	periodMillis = Period * 1000
)

// ErrInvalidSeed is returned for an empty or non-base32 seed.
var ErrInvalidSeed = errors.New("invalid totp seed")

var validateOpts = totp.ValidateOpts{
	Period:    Period,
	Skew:      0,
	Digits:    Digits,
	Algorithm: otp.AlgorithmSHA1,
}

// Code returns the code for seed at t. Spaces in seed are ignored and case
// does not matter.
func Code(seed string, t time.Time) (string, error) {
	seed = strings.ReplaceAll(seed, " ", "")
	if seed == "" {
		return "", ErrInvalidSeed
	}

	code, err := totp.GenerateCodeCustom(seed, t, validateOpts)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return code, nil
}

// SecondsRemaining returns the whole seconds left in the step containing t.
func SecondsRemaining(t time.Time) int {
	return int((periodMillis - t.UnixMilli()%periodMillis) / 1000)
}
