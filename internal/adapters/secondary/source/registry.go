package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// Registry maps file extensions to source parsers
type Registry struct {
	parsers map[string]ports.SourceParser
}

// NewRegistry returns a registry with the manifest and markdown parsers
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]ports.SourceParser)}

	manifest := NewManifestParser()
	r.Register(".yaml", manifest)
	r.Register(".yml", manifest)
	r.Register(".md", NewMarkdownParser())
	r.Register(".markdown", NewMarkdownParser())

	return r
}

// Register binds ext (with its leading dot) to parser
func (r *Registry) Register(ext string, parser ports.SourceParser) {
	r.parsers[strings.ToLower(ext)] = parser
}

// ForPath picks the parser for path by extension
func (r *Registry) ForPath(path string) (ports.SourceParser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if parser, ok := r.parsers[ext]; ok {
		return parser, nil
	}
	return nil, fmt.Errorf("unsupported deck source %q (expected one of %s)", path, strings.Join(r.Extensions(), ", "))
}

// Extensions lists the registered extensions in sorted order
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.parsers))
	for ext := range r.parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Ensure Registry implements ports.SourceParserRegistry
var _ ports.SourceParserRegistry = (*Registry)(nil)
