// Package validators checks user input before it reaches the vault:
// account credentials, entries and password generator options.
//
// Callers may name the fields to check; with no names every rule of the
// value's type runs. The first failing rule is returned as one of the
// sentinels in errors.go.
package validators

import "context"

// Validator checks obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
