package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// BuildDeps groups the collaborators of a BuildService
type BuildDeps struct {
	Parsers  ports.SourceParserRegistry
	Merger   ports.ConfigMerger
	Markdown ports.MarkdownConverter
	Fetchers ports.MediaFetcherFactory
	Writer   ports.DocumentWriter
	FS       ports.FileSystem
	Clock    ports.TimeProvider
	Logger   ports.Logger
}

// BuildService turns a deck source into a compiled reveal.js document
type BuildService struct {
	deps BuildDeps
}

// NewBuildService creates a build service. Clock defaults to the real clock.
func NewBuildService(deps BuildDeps) (*BuildService, error) {
	if deps.Parsers == nil || deps.Merger == nil || deps.Markdown == nil ||
		deps.Fetchers == nil || deps.Writer == nil || deps.FS == nil || deps.Logger == nil {
		return nil, errors.New("build service: missing dependency")
	}
	if deps.Clock == nil {
		deps.Clock = ports.NewRealTimeProvider()
	}
	return &BuildService{deps: deps}, nil
}

// Render builds the deck in memory; nothing is written
func (s *BuildService) Render(ctx context.Context, req ports.BuildRequest) (*ports.BuildResult, error) {
	_, result, err := s.assemble(ctx, req)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Build renders the deck and compiles it to its output path
func (s *BuildService) Build(ctx context.Context, req ports.BuildRequest) (*ports.BuildResult, error) {
	start := s.deps.Clock.Now()

	deck, result, err := s.assemble(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := deck.Compile(ctx, result.OutputPath); err != nil {
		s.deps.Logger.Error("compile failed: %v", err)
		return nil, err
	}

	result.Duration = s.deps.Clock.Since(start)
	s.deps.Logger.Info("wrote %s (%d fragments, %d hidden) in %s",
		result.OutputPath, result.Fragments, result.Hidden, result.Duration)
	return result, nil
}

func (s *BuildService) assemble(ctx context.Context, req ports.BuildRequest) (*Deck, *ports.BuildResult, error) {
	start := s.deps.Clock.Now()

	if req.Source == "" {
		return nil, nil, errors.New("deck source path cannot be empty")
	}
	if req.Config == nil {
		return nil, nil, errors.New("build config cannot be nil")
	}

	presentation, err := s.parse(ctx, req.Source)
	if err != nil {
		return nil, nil, err
	}

	// Settings from the source beat config files; CLI flags beat both
	cfg := *req.Config
	cfg.Deck = cfg.Deck.Merge(presentation.Deck)
	final := s.deps.Merger.ApplyFlags(&cfg, req.Flags)

	baseDir := filepath.Dir(req.Source)
	deck, err := NewDeck(final.Deck, s.deps.Markdown, s.deps.Fetchers(baseDir), s.deps.Writer)
	if err != nil {
		return nil, nil, fmt.Errorf("creating deck: %w", err)
	}

	stats, err := ApplyDirectives(ctx, deck, presentation.Directives)
	if err != nil {
		return nil, nil, fmt.Errorf("building %s: %w", req.Source, err)
	}

	s.deps.Logger.Debug("applied %d directives to %s, %d hidden", stats.Applied, req.Source, stats.Hidden)

	return deck, &ports.BuildResult{
		OutputPath: outputPath(req, presentation, final, baseDir),
		HTML:       []byte(deck.Render()),
		Fragments:  deck.Len(),
		Hidden:     stats.Hidden,
		Duration:   s.deps.Clock.Since(start),
	}, nil
}

func (s *BuildService) parse(ctx context.Context, source string) (*entities.Presentation, error) {
	if !s.deps.FS.Exists(source) {
		return nil, fmt.Errorf("deck source not found: %s", source)
	}

	content, err := s.deps.FS.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading deck source: %w", err)
	}

	parser, err := s.deps.Parsers.ForPath(source)
	if err != nil {
		return nil, err
	}

	presentation, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	if err := presentation.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck source %s: %w", source, err)
	}

	return presentation, nil
}

// outputPath picks the request output, then the source's own output, then
// the configured filename. The last two are relative to the source directory.
func outputPath(req ports.BuildRequest, p *entities.Presentation, cfg *entities.Config, baseDir string) string {
	if req.Output != "" {
		return req.Output
	}

	name := p.Output
	if name == "" {
		name = cfg.Output.Filename
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(baseDir, name)
}

// Ensure BuildService implements ports.BuildService
var _ ports.BuildService = (*BuildService)(nil)
