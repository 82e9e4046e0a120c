package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Ratio ─────────────────────────────────────────────────────────────────────

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "abc", "abc", 100},
		{"empty left", "", "abc", 0},
		{"empty right", "abc", "", 0},
		{"both empty", "", "", 0},
		{"one substitution counts as two edits", "abcd", "abce", 75},
		{"case differs", "password", "Password", 88},
		{"no common runes", "abc", "xyz", 0},
		{"multibyte runes", "héllo", "hello", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.a, tt.b))
		})
	}
}

func TestRatio_Symmetric(t *testing.T) {
	assert.Equal(t, Ratio("kitten", "sitting"), Ratio("sitting", "kitten"))
}

// ── PartialRatio ──────────────────────────────────────────────────────────────

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"substring", "abc", "xxabcxx", 100},
		{"argument order does not matter", "xxabcxx", "abc", 100},
		{"case sensitive", "ABC", "xxabcxx", 0},
		{"password with suffix", "Password1", "password", 88},
		{"best of every window offset", "abcd", "xabxcdx", 75},
		{"empty", "", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PartialRatio(tt.a, tt.b))
		})
	}
}

// ── Token ratios ──────────────────────────────────────────────────────────────

func TestTokenSortRatio(t *testing.T) {
	assert.Equal(t, 100, TokenSortRatio("fuzzy wuzzy was a bear", "wuzzy fuzzy was a bear"))
	assert.Equal(t, 100, TokenSortRatio("Bear, fuzzy!", "fuzzy bear"))
	assert.Equal(t, 0, TokenSortRatio("...", "bear"))
}

func TestTokenSetRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"subset of tokens", "new york mets", "new YORK mets vs", 100},
		{"no shared tokens", "Password1", "password", 94},
		{"empty after processing", "!!!", "password", 0},
		{"duplicate tokens collapse", "mets mets", "mets", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenSetRatio(tt.a, tt.b))
		})
	}
}

// ── Process ───────────────────────────────────────────────────────────────────

func TestProcess(t *testing.T) {
	assert.Equal(t, "hello  world", Process("  Hello, World!  "))
	assert.Equal(t, "github com", Process("GitHub.com"))
	assert.Equal(t, "", Process("?!."))
	assert.Equal(t, "über 42", Process("Über-42"))
}

// ── WRatio ────────────────────────────────────────────────────────────────────

func TestWRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal after processing", "github", "GitHub", 100},
		{"empty query", "", "abc", 0},
		{"punctuation only", "!!!", "abc", 0},
		{"short query scaled partial", "git", "github.com", 90},
		{"weak partial", "git", "bitbucket", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WRatio(tt.a, tt.b))
		})
	}
}

// ── ExtractAll ────────────────────────────────────────────────────────────────

func TestExtractAll_OrdersByScoreStable(t *testing.T) {
	// Arrange
	choices := []string{"gitlab", "github.com", "bitbucket"}

	// Act
	matches := ExtractAll("git", choices)

	// Assert
	require.Len(t, matches, 3)
	assert.Equal(t, Match{Index: 0, Choice: "gitlab", Score: 90}, matches[0])
	assert.Equal(t, Match{Index: 1, Choice: "github.com", Score: 90}, matches[1])
	assert.Equal(t, Match{Index: 2, Choice: "bitbucket", Score: 60}, matches[2])
}

func TestExtractAll_EmptyChoices(t *testing.T) {
	assert.Empty(t, ExtractAll("git", nil))
}
