package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// manifest is the YAML layout of a deck manifest
type manifest struct {
	Deck   entities.DeckConfig  `yaml:"deck"`
	Output string               `yaml:"output"`
	Slides []entities.Directive `yaml:"slides"`
}

// ManifestParser reads YAML deck manifests
type ManifestParser struct{}

// NewManifestParser creates a manifest parser
func NewManifestParser() *ManifestParser {
	return &ManifestParser{}
}

// Parse decodes a manifest. Unknown keys are rejected so typos in directive
// fields do not go unnoticed.
func (p *ManifestParser) Parse(ctx context.Context, content []byte) (*entities.Presentation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var m manifest
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	return &entities.Presentation{
		Deck:       m.Deck,
		Output:     m.Output,
		Directives: m.Slides,
	}, nil
}

// Ensure ManifestParser implements ports.SourceParser
var _ ports.SourceParser = (*ManifestParser)(nil)
