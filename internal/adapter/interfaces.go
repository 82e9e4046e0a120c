// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the vault
// talks to.
//
// The only remote dependency is a k-anonymity range API for leaked
// passwords, reached through [BreachChecker]. Only the first five hex
// characters of the password's SHA-1 digest ever leave the machine.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrTooManyRequests]
// for 429). Every failure returned by Count also wraps
// [ErrBreachCheckFailure].
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/breach_checker_mock.go -package=mock

// BreachChecker reports how often a password appears in known breaches.
type BreachChecker interface {
	// Count returns the number of breaches containing password, or 0 when it
	// is absent. When the API cannot be reached at all Count returns 0 and a
	// nil error. Protocol faults are returned wrapped in
	// ErrBreachCheckFailure.
	Count(ctx context.Context, password string) (int, error)
}
