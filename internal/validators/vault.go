package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-guard/internal/generator"
	"github.com/MKhiriev/go-vault-guard/internal/totp"
	"github.com/MKhiriev/go-vault-guard/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldAccountName targets the account name of a credential pair.
	FieldAccountName = "account_name"

	// FieldPassphrase targets the passphrase of a credential pair.
	FieldPassphrase = "passphrase"

	// FieldTitle targets the title of an entry.
	FieldTitle = "title"

	// FieldOTPSeed targets the base32 TOTP seed of an entry. An empty seed
	// is valid.
	FieldOTPSeed = "one_time_password_seed"

	// FieldLength targets the requested length of generator options.
	FieldLength = "length"

	// FieldCharacters checks that generator options leave at least one
	// usable character.
	FieldCharacters = "characters"
)

// MaxPasswordLength is the longest password the generator form accepts.
const MaxPasswordLength = 128

// VaultValidator validates the user input the vault accepts.
type VaultValidator struct {
}

// NewVaultValidator returns a [Validator] for credentials, entries and
// generator options.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.Entry / *models.Entry
//   - generator.Options / *generator.Options
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the type is validated.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case generator.Options:
		return v.validateOptions(ctx, value, fields...)
	case *generator.Options:
		return v.validateOptions(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountName, FieldPassphrase}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountName:
			if strings.TrimSpace(c.AccountName) == "" {
				return ErrEmptyAccountName
			}
		case FieldPassphrase:
			if c.Passphrase == "" {
				return ErrEmptyPassphrase
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateEntry(_ context.Context, e models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldOTPSeed}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(e.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldOTPSeed:
			if e.OneTimePasswordSeed == "" {
				continue
			}
			if _, err := totp.Code(e.OneTimePasswordSeed, time.Now()); err != nil {
				return ErrInvalidOTPSeed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateOptions(_ context.Context, o generator.Options, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength, FieldCharacters}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if o.Length < generator.MinLength || o.Length > MaxPasswordLength {
				return ErrInvalidLength
			}
		case FieldCharacters:
			charset := generator.Lower
			if o.Upper {
				charset += generator.Upper
			}
			if o.Digits {
				charset += generator.Digits
			}
			if o.Special {
				charset += generator.Special
			}
			if !strings.ContainsFunc(charset, func(r rune) bool {
				return !strings.ContainsRune(o.Forbidden, r)
			}) {
				return ErrNoCharacters
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
