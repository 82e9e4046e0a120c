package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runVaultStorageContract checks the behaviour every backend shares.
func runVaultStorageContract(t *testing.T, newStorage func(t *testing.T) VaultStorage) {
	ctx := context.Background()

	t.Run("create is exclusive", func(t *testing.T) {
		s := newStorage(t)

		created, err := s.Create(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, created)

		created, err = s.Create(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		s := newStorage(t)

		_, err := s.Create(ctx, "alice")
		require.NoError(t, err)

		created, err := s.Create(ctx, "Alice")
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("created record is empty", func(t *testing.T) {
		s := newStorage(t)
		_, err := s.Create(ctx, "alice")
		require.NoError(t, err)

		content, ok, err := s.Read(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, content)
	})

	t.Run("read missing", func(t *testing.T) {
		s := newStorage(t)

		content, ok, err := s.Read(ctx, "nobody")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, content)
	})

	t.Run("write replaces content", func(t *testing.T) {
		s := newStorage(t)

		require.NoError(t, s.Write(ctx, "first version, quite long", "alice"))
		require.NoError(t, s.Write(ctx, "second", "alice"))

		content, ok, err := s.Read(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", content)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.Write(ctx, "blob", "alice"))
		require.NoError(t, s.Write(ctx, "other", "bob"))

		require.NoError(t, s.Delete(ctx, "alice"))
		require.NoError(t, s.Delete(ctx, "alice"))

		_, ok, err := s.Read(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, ok)

		content, ok, err := s.Read(ctx, "bob")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "other", content)
	})

	t.Run("create after delete", func(t *testing.T) {
		s := newStorage(t)
		_, err := s.Create(ctx, "alice")
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, "alice"))

		created, err := s.Create(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, created)
	})
}
