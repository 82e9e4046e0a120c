package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-guard/internal/adapter"
	"github.com/MKhiriev/go-vault-guard/internal/generator"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/mock"
	"github.com/MKhiriev/go-vault-guard/models"
)

func newTestChecker(t *testing.T, stdin string) (*Checker, *mock.MockScorer, *mock.MockBreachChecker, *bytes.Buffer) {
	t.Helper()
	noTerminal(t)

	ctrl := gomock.NewController(t)
	scorer := mock.NewMockScorer(ctrl)
	breach := mock.NewMockBreachChecker(ctrl)
	out := &bytes.Buffer{}

	c := NewChecker(scorer, breach, generator.New(), strings.NewReader(stdin), out, logger.Nop())
	return c, scorer, breach, out
}

func noTerminal(t *testing.T) {
	t.Helper()
	old := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = old })
}

// ── Check ──────────────────────────────────────────────────────────────────

func TestChecker_Check(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		err      error
		expected string
	}{
		{"breached", 3861493, nil, "Strength: Very weak\nBreaches: seen 3861493 times\n"},
		{"clean", 0, nil, "Strength: Very weak\nBreaches: none found\n"},
		{"rate limited", 0, fmt.Errorf("%w: %w", adapter.ErrBreachCheckFailure, adapter.ErrTooManyRequests), "Strength: Very weak\nBreaches: unknown (rate limited)\n"},
		{"failure", 0, adapter.ErrBreachCheckFailure, "Strength: Very weak\nBreaches: unknown\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			c, scorer, breach, out := newTestChecker(t, "")
			scorer.EXPECT().Score("password").Return(models.VeryWeak)
			breach.EXPECT().Count(gomock.Any(), "password").Return(tt.count, tt.err)

			// Act
			err := c.Check(context.Background(), "password")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

// ── Run ────────────────────────────────────────────────────────────────────

func TestChecker_Run_ReadsPasswordFromPipe(t *testing.T) {
	// Arrange
	c, scorer, breach, out := newTestChecker(t, "Tr0ub4dor&3\n")
	scorer.EXPECT().Score("Tr0ub4dor&3").Return(models.Strong)
	breach.EXPECT().Count(gomock.Any(), "Tr0ub4dor&3").Return(0, nil)

	// Act
	err := c.Run(context.Background(), nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Strength: Strong\nBreaches: none found\n", out.String())
}

func TestChecker_Run_EmptyInput(t *testing.T) {
	c, _, _, _ := newTestChecker(t, "\n")

	err := c.Run(context.Background(), nil)

	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestChecker_Run_Generate(t *testing.T) {
	// Arrange
	c, _, _, out := newTestChecker(t, "")

	// Act
	err := c.Run(context.Background(), []string{"-generate", "24"})

	// Assert
	require.NoError(t, err)
	password := strings.TrimSuffix(out.String(), "\n")
	assert.Len(t, password, 24)
	assert.True(t, strings.ContainsAny(password, generator.Lower))
	assert.True(t, strings.ContainsAny(password, generator.Upper))
	assert.True(t, strings.ContainsAny(password, generator.Digits))
	assert.True(t, strings.ContainsAny(password, generator.Special))
}

func TestChecker_Run_GenerateInvalidLength(t *testing.T) {
	c, _, _, out := newTestChecker(t, "")

	err := c.Run(context.Background(), []string{"-generate", "2"})

	assert.ErrorIs(t, err, generator.ErrInvalidLength)
	assert.Empty(t, out.String())
}

func TestChecker_Run_BadFlag(t *testing.T) {
	c, _, _, _ := newTestChecker(t, "")

	err := c.Run(context.Background(), []string{"-generate", "many"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

// ── GetPassword ────────────────────────────────────────────────────────────

func TestGetPassword_Terminal(t *testing.T) {
	// Arrange
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("hunter2"), nil }
	var out bytes.Buffer

	// Act
	got, err := GetPassword(strings.NewReader(""), &out)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	_, err := GetPassword(strings.NewReader(""), &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read password")
}

func TestGetPassword_PipeWithoutNewline(t *testing.T) {
	noTerminal(t)

	got, err := GetPassword(strings.NewReader("lastline"), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}
