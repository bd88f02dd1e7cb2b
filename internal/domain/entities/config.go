package entities

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Deck    DeckConfig    `toml:"deck"`
	Markup  MarkupConfig  `toml:"markup"`
	Media   MediaConfig   `toml:"media"`
	Output  OutputConfig  `toml:"output"`
	Server  ServerConfig  `toml:"server"`
	Watcher WatcherConfig `toml:"watcher"`
	Browser BrowserConfig `toml:"browser"`
	Logging LoggingConfig `toml:"logging"`
}

// Validate validates the configuration. Deck settings are checked later,
// once the deck source has had a chance to fill them in.
func (c *Config) Validate() error {
	if err := c.Media.Validate(); err != nil {
		return fmt.Errorf("media config: %w", err)
	}

	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Watcher.Validate(); err != nil {
		return fmt.Errorf("watcher config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// DeckConfig holds the presentation options substituted into the deck
// header and footer. It is fixed once a deck is constructed.
type DeckConfig struct {
	ShortTitle string   `toml:"short_title" yaml:"short_title"`
	Conference string   `toml:"conference" yaml:"conference"`
	Title      string   `toml:"title" yaml:"title"`
	Author     string   `toml:"author" yaml:"author"`
	RevealPath string   `toml:"reveal_path" yaml:"reveal_path"`
	Theme      string   `toml:"theme" yaml:"theme"`
	Width      int      `toml:"width" yaml:"width"`
	Height     int      `toml:"height" yaml:"height"`
	Margin     float64  `toml:"margin" yaml:"margin"`
	Draft      bool     `toml:"draft" yaml:"draft"`
	Embed      bool     `toml:"embed" yaml:"embed"`
	Sections   []string `toml:"sections" yaml:"sections"`
}

// Validate reports every field the header and footer templates need but
// that is missing. conference and reveal_path may legitimately be empty.
func (d DeckConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(d.ShortTitle) == "" {
		missing = append(missing, "short_title")
	}
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Author) == "" {
		missing = append(missing, "author")
	}
	if strings.TrimSpace(d.Theme) == "" {
		missing = append(missing, "theme")
	}
	if d.Width <= 0 {
		missing = append(missing, "width")
	}
	if d.Height <= 0 {
		missing = append(missing, "height")
	}
	if len(missing) > 0 {
		return &ConfigError{Fields: missing, Reason: "missing required deck settings"}
	}

	if d.Margin < 0 {
		return &ConfigError{Fields: []string{"margin"}, Reason: "margin must be non-negative"}
	}

	return nil
}

// Merge returns a copy of d with every non-zero field of override applied.
// Booleans can only be switched on this way; CLI flags switch them off.
func (d DeckConfig) Merge(override DeckConfig) DeckConfig {
	result := d
	if override.ShortTitle != "" {
		result.ShortTitle = override.ShortTitle
	}
	if override.Conference != "" {
		result.Conference = override.Conference
	}
	if override.Title != "" {
		result.Title = override.Title
	}
	if override.Author != "" {
		result.Author = override.Author
	}
	if override.RevealPath != "" {
		result.RevealPath = override.RevealPath
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.Margin != 0 {
		result.Margin = override.Margin
	}
	result.Draft = result.Draft || override.Draft
	result.Embed = result.Embed || override.Embed
	if len(override.Sections) > 0 {
		result.Sections = append([]string(nil), override.Sections...)
	} else if d.Sections != nil {
		result.Sections = append([]string(nil), d.Sections...)
	}
	return result
}

// MarkupConfig controls how speaker notes and list entries are converted
// from markdown to HTML
type MarkupConfig struct {
	Typographer bool `toml:"typographer"`
	HardWraps   bool `toml:"hard_wraps"`
	Sanitize    bool `toml:"sanitize"`
}

// MediaConfig controls how embedded media is fetched
type MediaConfig struct {
	FetchTimeout int    `toml:"fetch_timeout"` // seconds, 0 disables the timeout
	UserAgent    string `toml:"user_agent"`
}

// Validate validates media configuration
func (m MediaConfig) Validate() error {
	if m.FetchTimeout < 0 {
		return errors.New("fetch timeout must be non-negative")
	}
	return nil
}

// GetFetchTimeout returns the fetch timeout as a duration; zero means none
func (m MediaConfig) GetFetchTimeout() time.Duration {
	if m.FetchTimeout <= 0 {
		return 0
	}
	return time.Duration(m.FetchTimeout) * time.Second
}

// OutputConfig contains output file settings
type OutputConfig struct {
	Filename string `toml:"filename"`
}

// Validate validates output configuration
func (o OutputConfig) Validate() error {
	if strings.TrimSpace(o.Filename) == "" {
		return errors.New("output filename cannot be empty")
	}
	return nil
}

// ServerConfig contains preview server configuration
type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	CORSOrigins     []string `toml:"cors_origins"`
}

// Validate validates server configuration
func (s ServerConfig) Validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return errors.New("port must be between 0 and 65535")
	}

	if strings.ContainsAny(s.Host, " !") {
		return fmt.Errorf("invalid host: %s", s.Host)
	}

	if s.ReadTimeout < 0 {
		return errors.New("read timeout must be non-negative")
	}

	if s.WriteTimeout < 0 {
		return errors.New("write timeout must be non-negative")
	}

	if s.ShutdownTimeout < 0 {
		return errors.New("shutdown timeout must be non-negative")
	}

	for _, origin := range s.CORSOrigins {
		if origin == "" {
			return errors.New("CORS origin cannot be empty")
		}
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin format: %s (must start with http:// or https://)", origin)
		}
	}

	return nil
}

// Address returns the host:port pair the server listens on
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, fmt.Sprint(s.Port))
}

// GetReadTimeout returns the read timeout as a duration
func (s ServerConfig) GetReadTimeout() time.Duration {
	if s.ReadTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.ReadTimeout) * time.Second
}

// GetWriteTimeout returns the write timeout as a duration
func (s ServerConfig) GetWriteTimeout() time.Duration {
	if s.WriteTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.WriteTimeout) * time.Second
}

// GetShutdownTimeout returns the shutdown timeout as a duration
func (s ServerConfig) GetShutdownTimeout() time.Duration {
	if s.ShutdownTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// GetCORSOrigins returns CORS origins with defaults if empty
func (s ServerConfig) GetCORSOrigins() []string {
	if len(s.CORSOrigins) == 0 {
		return []string{
			"http://localhost:8000",
			"http://127.0.0.1:8000",
		}
	}
	return s.CORSOrigins
}

// WatcherConfig contains source watcher configuration
type WatcherConfig struct {
	DebounceMs int `toml:"debounce_ms"`
}

// Validate validates watcher configuration
func (w WatcherConfig) Validate() error {
	if w.DebounceMs < 0 {
		return errors.New("debounce time must be non-negative")
	}
	return nil
}

// GetDebounce returns the debounce time as a duration
func (w WatcherConfig) GetDebounce() time.Duration {
	if w.DebounceMs <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// BrowserConfig contains browser launch configuration
type BrowserConfig struct {
	AutoOpen bool `toml:"auto_open"`
}

// LogLevel represents logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `toml:"level"`       // debug, info, warn, error
	JSONFormat bool   `toml:"json_format"` // Output logs in JSON format
	File       string `toml:"file"`        // Log to file (optional)
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch LogLevel(l.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	case "":
		// Empty is okay, will use default
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l.Level)
	}

	if l.File != "" {
		if !filepath.IsAbs(l.File) {
			return errors.New("log file path must be absolute")
		}

		dir := filepath.Dir(l.File)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("log file directory does not exist: %s", dir)
		}
	}

	return nil
}

// GetLevel returns the log level with default
func (l LoggingConfig) GetLevel() LogLevel {
	if l.Level == "" {
		return LogLevelInfo
	}
	return LogLevel(l.Level)
}
