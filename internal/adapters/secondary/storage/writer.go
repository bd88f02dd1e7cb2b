package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

const documentMode os.FileMode = 0o644

// AtomicWriter writes documents through a temporary file in the target
// directory and renames it into place
type AtomicWriter struct {
	fs ports.FileSystem
}

// NewAtomicWriter creates a writer over fs
func NewAtomicWriter(fs ports.FileSystem) *AtomicWriter {
	return &AtomicWriter{fs: fs}
}

// WriteDocument replaces path with data. Readers see either the old file
// or the complete new one.
func (w *AtomicWriter) WriteDocument(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return &entities.WriteError{Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, 0o750); err != nil {
		return &entities.WriteError{Path: path, Err: fmt.Errorf("creating directory: %w", err)}
	}

	tmp, err := w.fs.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &entities.WriteError{Path: path, Err: fmt.Errorf("creating temp file: %w", err)}
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpName)
		return &entities.WriteError{Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(fmt.Errorf("writing: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing: %w", err))
	}
	if err := tmp.Chmod(documentMode); err != nil {
		return fail(fmt.Errorf("setting permissions: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpName)
		return &entities.WriteError{Path: path, Err: fmt.Errorf("closing: %w", err)}
	}

	if err := w.fs.Rename(tmpName, path); err != nil {
		_ = w.fs.Remove(tmpName)
		return &entities.WriteError{Path: path, Err: fmt.Errorf("renaming: %w", err)}
	}

	return nil
}

// Ensure AtomicWriter implements ports.DocumentWriter
var _ ports.DocumentWriter = (*AtomicWriter)(nil)
