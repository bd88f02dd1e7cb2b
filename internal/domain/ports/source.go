package ports

import (
	"context"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

// SourceParser parses a deck source file into a presentation
type SourceParser interface {
	Parse(ctx context.Context, content []byte) (*entities.Presentation, error)
}

// SourceParserRegistry selects a parser from a source file path
type SourceParserRegistry interface {
	ForPath(path string) (SourceParser, error)
}
