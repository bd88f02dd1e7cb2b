package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/config"
	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/logging"
	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/markup"
	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/media"
	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/source"
	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/storage"
	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
	"github.com/fredcamaral/revealdeck/internal/domain/services"
)

// flagKinds lists the flags forwarded to the config merger and their types
var flagKinds = map[string]string{
	"title":       "string",
	"short-title": "string",
	"author":      "string",
	"conference":  "string",
	"theme":       "string",
	"reveal-path": "string",
	"width":       "int",
	"height":      "int",
	"margin":      "float64",
	"draft":       "bool",
	"embed":       "bool",
	"sanitize":    "bool",
	"filename":    "string",
	"port":        "int",
	"host":        "string",
	"open":        "bool",
	"no-browser":  "bool",
	"log-level":   "string",
	"verbose":     "bool",
}

// app holds the wired collaborators of one command run
type app struct {
	config  *entities.Config
	flags   map[string]interface{}
	logger  *logging.Logger
	loader  *config.TOMLLoader
	configs *services.ConfigService
	fs      ports.FileSystem
	builder *services.BuildService
}

// collectFlags returns the explicitly set flags of cmd keyed by merger name
func collectFlags(cmd *cobra.Command) map[string]interface{} {
	flags := make(map[string]interface{})
	fs := cmd.Flags()

	for name, kind := range flagKinds {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}

		var (
			value interface{}
			err   error
		)
		switch kind {
		case "string":
			value, err = fs.GetString(name)
		case "int":
			value, err = fs.GetInt(name)
		case "float64":
			value, err = fs.GetFloat64(name)
		case "bool":
			value, err = fs.GetBool(name)
		}
		if err == nil {
			flags[name] = value
		}
	}

	return flags
}

func newLoader(cmd *cobra.Command) *config.TOMLLoader {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.NewTOMLLoaderWithPath(path)
	}
	return config.NewTOMLLoader()
}

// newApp loads configuration for a deck in sourceDir and wires the build
// pipeline
func newApp(cmd *cobra.Command, sourceDir string) (*app, error) {
	flags := collectFlags(cmd)
	loader := newLoader(cmd)
	merger := config.NewConfigMerger()

	configs := services.NewConfigService(loader, merger)
	cfg, err := configs.LoadConfig(cmd.Context(), sourceDir, flags)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	fs := ports.NewRealFileSystem()
	builder, err := services.NewBuildService(services.BuildDeps{
		Parsers:  source.NewRegistry(),
		Merger:   merger,
		Markdown: markup.NewGoldmarkConverter(cfg.Markup),
		Fetchers: media.NewFactory(fs, media.NewHTTPClient(cfg.Media)),
		Writer:   storage.NewAtomicWriter(fs),
		FS:       fs,
		Clock:    ports.NewRealTimeProvider(),
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		config:  cfg,
		flags:   flags,
		logger:  logger,
		loader:  loader,
		configs: configs,
		fs:      fs,
		builder: builder,
	}, nil
}

func (a *app) request(sourcePath, output string) ports.BuildRequest {
	return ports.BuildRequest{
		Source: sourcePath,
		Output: output,
		Config: a.config,
		Flags:  a.flags,
	}
}

// reloadConfig loads configuration again for a deck in sourceDir, with the
// same flags as the original run
func (a *app) reloadConfig(sourceDir string) services.ConfigLoader {
	return func(ctx context.Context) (*entities.Config, error) {
		cfg, err := a.configs.LoadConfig(ctx, sourceDir, a.flags)
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
		return cfg, nil
	}
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// sourceDir returns the directory holding the deck source
func sourceDir(sourcePath string) string {
	return filepath.Dir(sourcePath)
}
