package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// failingRenameFS wraps the real file system and fails every rename
type failingRenameFS struct {
	ports.FileSystem
}

func (failingRenameFS) Rename(oldpath, newpath string) error {
	return errors.New("rename refused")
}

func TestAtomicWriter_WriteDocument(t *testing.T) {
	t.Run("creates file and parents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "deck.html")
		writer := NewAtomicWriter(ports.NewRealFileSystem())

		err := writer.WriteDocument(context.Background(), path, []byte("<html></html>"))

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, documentMode, info.Mode().Perm())
	})

	t.Run("replaces existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deck.html")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
		writer := NewAtomicWriter(ports.NewRealFileSystem())

		require.NoError(t, writer.WriteDocument(context.Background(), path, []byte("new")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("failed rename leaves no temp file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "deck.html")
		writer := NewAtomicWriter(failingRenameFS{ports.NewRealFileSystem()})

		err := writer.WriteDocument(context.Background(), path, []byte("data"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, entities.ErrWrite))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deck.html")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewAtomicWriter(ports.NewRealFileSystem()).WriteDocument(ctx, path, []byte("data"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, entities.ErrWrite))
		assert.NoFileExists(t, path)
	})
}
