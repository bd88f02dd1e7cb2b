package ports

import "context"

// DocumentWriter stores a compiled document at path, replacing any existing
// file. On failure no partial file is left behind and the error is an
// *entities.WriteError.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, path string, data []byte) error
}
