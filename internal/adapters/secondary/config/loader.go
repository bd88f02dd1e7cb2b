package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// LocalConfigName is the per-directory configuration file name
const LocalConfigName = "revealdeck.toml"

// TOMLLoader implements the ConfigLoader interface using TOML files
type TOMLLoader struct {
	globalPath string
	localName  string
}

// NewTOMLLoader creates a new TOML configuration loader
func NewTOMLLoader() *TOMLLoader {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}

	return NewTOMLLoaderWithPath(filepath.Join(configDir, "revealdeck", "config.toml"))
}

// NewTOMLLoaderWithPath creates a loader with an explicit global config path
func NewTOMLLoaderWithPath(globalPath string) *TOMLLoader {
	return &TOMLLoader{
		globalPath: globalPath,
		localName:  LocalConfigName,
	}
}

// LoadGlobal loads the global configuration file. A missing file is not an
// error; run `revealdeck init --global` to create one.
func (l *TOMLLoader) LoadGlobal(ctx context.Context) (*entities.Config, error) {
	if _, err := os.Stat(l.globalPath); os.IsNotExist(err) {
		return nil, nil
	}

	return l.loadConfig(l.globalPath)
}

// LoadLocal loads a local configuration file from the specified directory
func (l *TOMLLoader) LoadLocal(ctx context.Context, dir string) (*entities.Config, error) {
	localPath := l.GetLocalPath(dir)

	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return nil, nil // Local config is optional
	}

	return l.loadConfig(localPath)
}

// CreateDefaults writes the default configuration to path. An existing file
// is never overwritten.
func (l *TOMLLoader) CreateDefaults(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	if err := l.ensureConfigDir(path); err != nil {
		return err
	}

	defaults := GetDefaultConfig()

	// #nosec G304 - path is the global config path or a local path chosen by the user
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	encoder := toml.NewEncoder(file)
	encoder.Indent = "  "

	if err := encoder.Encode(defaults); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}

	return nil
}

// GetGlobalPath returns the path to the global configuration file
func (l *TOMLLoader) GetGlobalPath() string {
	return l.globalPath
}

// GetLocalPath returns the path to the local configuration file for a directory
func (l *TOMLLoader) GetLocalPath(dir string) string {
	return filepath.Join(dir, l.localName)
}

// loadConfig loads a configuration file. Files may be partial, so only the
// sections whose zero value is acceptable are validated here; the merged
// result is validated by the config service.
func (l *TOMLLoader) loadConfig(path string) (*entities.Config, error) {
	var config entities.Config
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("parsing TOML from %s: %s", path, parseErr.ErrorWithPosition())
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("invalid config in %s: unknown key %q", path, undecoded[0].String())
	}

	if err := validatePartial(&config); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return &config, nil
}

func validatePartial(config *entities.Config) error {
	if err := config.Media.Validate(); err != nil {
		return fmt.Errorf("media config: %w", err)
	}
	if err := config.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := config.Watcher.Validate(); err != nil {
		return fmt.Errorf("watcher config: %w", err)
	}
	if err := config.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	if config.Deck.Width < 0 || config.Deck.Height < 0 || config.Deck.Margin < 0 {
		return errors.New("deck config: width, height and margin must be non-negative")
	}
	return nil
}

// ensureConfigDir ensures the configuration directory exists
func (l *TOMLLoader) ensureConfigDir(path string) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	return nil
}

// Ensure TOMLLoader implements ports.ConfigLoader
var _ ports.ConfigLoader = (*TOMLLoader)(nil)
