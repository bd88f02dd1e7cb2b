package ports

import (
	"context"
	"time"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

// ConfigService defines the interface for the configuration service
type ConfigService interface {
	// LoadConfig loads the complete configuration with hierarchy and overrides
	LoadConfig(ctx context.Context, workingDir string, flags map[string]interface{}) (*entities.Config, error)

	// GetDefaultConfig returns the default configuration
	GetDefaultConfig() *entities.Config

	// ValidateConfig validates a configuration
	ValidateConfig(config *entities.Config) error

	// CreateGlobalConfig creates the global configuration file with defaults
	CreateGlobalConfig(ctx context.Context) error

	// CreateLocalConfig creates a local configuration file in dir with defaults
	CreateLocalConfig(ctx context.Context, dir string) (string, error)
}

// BuildRequest describes one deck build
type BuildRequest struct {
	// Source is the manifest (.yaml/.yml) or markdown deck (.md) path
	Source string

	// Output overrides the output path chosen by the source or configuration
	Output string

	Config *entities.Config

	// Flags are CLI overrides applied after the source's own deck settings
	Flags map[string]interface{}
}

// BuildResult summarises a build
type BuildResult struct {
	OutputPath string
	HTML       []byte
	Fragments  int
	Hidden     int
	Duration   time.Duration
}

// BuildService turns deck sources into HTML documents
type BuildService interface {
	// Render builds the deck in memory without writing it
	Render(ctx context.Context, req BuildRequest) (*BuildResult, error)

	// Build renders the deck and writes it to its output path
	Build(ctx context.Context, req BuildRequest) (*BuildResult, error)
}
