package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLines parses every JSON line written to buf.
func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()

	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, sc.Err())
	return entries
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewLogger_EntryShape(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	l := newLogger(&buf, "pwcheck")

	// Act
	l.Debug().Str("path", "data/words.txt").Msg("dictionary loaded")

	// Assert
	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "pwcheck", entry["role"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "data/words.txt", entry["path"])
	assert.Contains(t, entry, "time")
	assert.NotEmpty(t, entry["func"])

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_Stderr(t *testing.T) {
	require.NotNil(t, NewLogger("vault-guard"))
}

// ── File logger ──────────────────────────────────────────────────────────────

func TestNewFileLogger(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		messages []string
		wantFile bool
	}{
		{
			name: "creates missing directories",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), ".vault-guard", "logs", "vault.log")
			},
			messages: []string{"vault opened"},
			wantFile: true,
		},
		{
			name: "appends to an existing log",
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "vault.log")
				require.NoError(t, os.WriteFile(p, []byte(`{"message":"earlier run"}`+"\n"), 0o600))
				return p
			},
			messages: []string{"vault opened", "vault saved"},
			wantFile: true,
		},
		{
			name: "falls back to stderr when the directory cannot be created",
			path: func(t *testing.T) string {
				blocker := filepath.Join(t.TempDir(), "not-a-dir")
				require.NoError(t, os.WriteFile(blocker, nil, 0o600))
				return filepath.Join(blocker, "logs", "vault.log")
			},
			messages: []string{"still logging"},
			wantFile: false,
		},
		{
			name:     "empty path logs to stderr",
			path:     func(*testing.T) string { return "" },
			messages: []string{"still logging"},
			wantFile: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			before := 0
			if data, err := os.ReadFile(path); err == nil {
				before = len(decodeLines(t, data))
			}

			l := NewFileLogger("vault-guard", path)
			require.NotNil(t, l)
			for _, msg := range tt.messages {
				l.Info().Msg(msg)
			}

			data, err := os.ReadFile(path)
			if !tt.wantFile {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			entries := decodeLines(t, data)
			require.Len(t, entries, before+len(tt.messages))
			for i, msg := range tt.messages {
				assert.Equal(t, msg, entries[before+i]["message"])
				assert.Equal(t, "vault-guard", entries[before+i]["role"])
			}
		})
	}
}

// ── Derived loggers ──────────────────────────────────────────────────────────

func TestWithSession_TagsOnlyTheSessionLogger(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	base := newLogger(&buf, "vault-guard")

	// Act
	base.WithSession("5f0c-7a").Info().Msg("vault saved")
	base.Info().Msg("logged out")

	// Assert
	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "5f0c-7a", entries[0]["session_id"])
	assert.Equal(t, "vault-guard", entries[0]["role"])
	assert.NotContains(t, entries[1], "session_id")
}

func TestGetChildLogger_FieldsDoNotLeakToParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "vault-guard")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("component", "sweep").Logger()

	child.Info().Msg("breach check finished")
	parent.Info().Msg("idle")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "sweep", entries[0]["component"])
	assert.Equal(t, "vault-guard", entries[0]["role"])
	assert.NotContains(t, entries[1], "component")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

// ── Context ──────────────────────────────────────────────────────────────────

func TestFromContext(t *testing.T) {
	t.Run("session logger round trip", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := newLogger(&buf, "vault-guard").WithSession("s-1").WithContext(context.Background())

		FromContext(ctx).Warn().Msg("breach api unreachable")

		entries := decodeLines(t, buf.Bytes())
		require.Len(t, entries, 1)
		assert.Equal(t, "s-1", entries[0]["session_id"])
		assert.Equal(t, "warn", entries[0]["level"])
	})

	t.Run("bare context", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
