package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// ConfigMerger implements the ConfigMerger interface
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	// Start with first config as base
	result := deepCopy(configs[0])
	if result == nil {
		result = &entities.Config{}
	}

	// Merge subsequent configs
	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			m.mergeInto(result, configs[i])
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration. Boolean flags
// are applied whatever their value, so they can switch settings off.
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	// Deck
	if v, ok := flags["title"].(string); ok && v != "" {
		result.Deck.Title = v
	}
	if v, ok := flags["short-title"].(string); ok && v != "" {
		result.Deck.ShortTitle = v
	}
	if v, ok := flags["author"].(string); ok && v != "" {
		result.Deck.Author = v
	}
	if v, ok := flags["conference"].(string); ok && v != "" {
		result.Deck.Conference = v
	}
	if v, ok := flags["theme"].(string); ok && v != "" {
		result.Deck.Theme = v
	}
	if v, ok := flags["reveal-path"].(string); ok && v != "" {
		result.Deck.RevealPath = v
	}
	if v, ok := flags["width"].(int); ok && v > 0 {
		result.Deck.Width = v
	}
	if v, ok := flags["height"].(int); ok && v > 0 {
		result.Deck.Height = v
	}
	if v, ok := flags["margin"].(float64); ok && v >= 0 {
		result.Deck.Margin = v
	}
	if v, ok := flags["draft"].(bool); ok {
		result.Deck.Draft = v
	}
	if v, ok := flags["embed"].(bool); ok {
		result.Deck.Embed = v
	}

	// Markup
	if v, ok := flags["sanitize"].(bool); ok {
		result.Markup.Sanitize = v
	}

	// Output
	if v, ok := flags["filename"].(string); ok && v != "" {
		result.Output.Filename = v
	}

	// Server
	if port, ok := flags["port"].(int); ok && port > 0 {
		result.Server.Port = port
	}
	if host, ok := flags["host"].(string); ok && host != "" {
		result.Server.Host = host
	}

	// Browser
	if open, ok := flags["open"].(bool); ok {
		result.Browser.AutoOpen = open
	}
	if noBrowser, ok := flags["no-browser"].(bool); ok && noBrowser {
		result.Browser.AutoOpen = false
	}

	// Logging
	if level, ok := flags["log-level"].(string); ok && level != "" {
		result.Logging.Level = level
	}
	if verbose, ok := flags["verbose"].(bool); ok && verbose {
		result.Logging.Level = string(entities.LogLevelDebug)
	}

	return result
}

// ApplyEnvVars applies environment variable overrides to a configuration
func (m *ConfigMerger) ApplyEnvVars(config *entities.Config) *entities.Config {
	result := deepCopy(config)

	// Deck configuration from environment
	if theme := os.Getenv("REVEALDECK_THEME"); theme != "" {
		result.Deck.Theme = theme
	}
	if path := os.Getenv("REVEALDECK_REVEAL_PATH"); path != "" {
		result.Deck.RevealPath = path
	}
	if author := os.Getenv("REVEALDECK_AUTHOR"); author != "" {
		result.Deck.Author = author
	}
	if draftStr := os.Getenv("REVEALDECK_DRAFT"); draftStr != "" {
		if draft, err := strconv.ParseBool(draftStr); err == nil {
			result.Deck.Draft = draft
		}
	}
	if embedStr := os.Getenv("REVEALDECK_EMBED"); embedStr != "" {
		if embed, err := strconv.ParseBool(embedStr); err == nil {
			result.Deck.Embed = embed
		}
	}

	// Server configuration from environment
	if host := os.Getenv("REVEALDECK_HOST"); host != "" {
		result.Server.Host = host
	}
	if portStr := os.Getenv("REVEALDECK_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			result.Server.Port = port
		}
	}

	// Browser configuration from environment
	if noBrowserStr := os.Getenv("REVEALDECK_NO_BROWSER"); noBrowserStr != "" {
		if noBrowser, err := strconv.ParseBool(noBrowserStr); err == nil && noBrowser {
			result.Browser.AutoOpen = false
		}
	}

	// Watcher configuration from environment
	if debounceStr := os.Getenv("REVEALDECK_WATCH_DEBOUNCE"); debounceStr != "" {
		if debounce, err := strconv.Atoi(debounceStr); err == nil && debounce >= 0 {
			result.Watcher.DebounceMs = debounce
		}
	}

	// Media configuration from environment
	if timeoutStr := os.Getenv("REVEALDECK_FETCH_TIMEOUT"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil && timeout >= 0 {
			result.Media.FetchTimeout = timeout
		}
	}

	// Logging configuration from environment
	if level := os.Getenv("REVEALDECK_LOG_LEVEL"); level != "" {
		result.Logging.Level = strings.ToLower(level)
	}

	return result
}

// mergeInto merges source configuration into target configuration.
// TOML cannot tell false from unset, so booleans are only ever switched on
// here; CLI flags are the way to switch them off.
func (m *ConfigMerger) mergeInto(target, source *entities.Config) {
	target.Deck = target.Deck.Merge(source.Deck)

	// Markup config
	target.Markup.Typographer = target.Markup.Typographer || source.Markup.Typographer
	target.Markup.HardWraps = target.Markup.HardWraps || source.Markup.HardWraps
	target.Markup.Sanitize = target.Markup.Sanitize || source.Markup.Sanitize

	// Media config
	if source.Media.FetchTimeout != 0 {
		target.Media.FetchTimeout = source.Media.FetchTimeout
	}
	if source.Media.UserAgent != "" {
		target.Media.UserAgent = source.Media.UserAgent
	}

	// Output config
	if source.Output.Filename != "" {
		target.Output.Filename = source.Output.Filename
	}

	// Server config
	if source.Server.Port != 0 {
		target.Server.Port = source.Server.Port
	}
	if source.Server.Host != "" {
		target.Server.Host = source.Server.Host
	}
	if source.Server.ReadTimeout != 0 {
		target.Server.ReadTimeout = source.Server.ReadTimeout
	}
	if source.Server.WriteTimeout != 0 {
		target.Server.WriteTimeout = source.Server.WriteTimeout
	}
	if source.Server.ShutdownTimeout != 0 {
		target.Server.ShutdownTimeout = source.Server.ShutdownTimeout
	}
	if len(source.Server.CORSOrigins) > 0 {
		target.Server.CORSOrigins = make([]string, len(source.Server.CORSOrigins))
		copy(target.Server.CORSOrigins, source.Server.CORSOrigins)
	}

	// Watcher config
	if source.Watcher.DebounceMs != 0 {
		target.Watcher.DebounceMs = source.Watcher.DebounceMs
	}

	// Browser config
	target.Browser.AutoOpen = target.Browser.AutoOpen || source.Browser.AutoOpen

	// Logging config
	if source.Logging.Level != "" {
		target.Logging.Level = source.Logging.Level
	}
	target.Logging.JSONFormat = target.Logging.JSONFormat || source.Logging.JSONFormat
	if source.Logging.File != "" {
		target.Logging.File = source.Logging.File
	}
}

// deepCopy creates a deep copy of a configuration
func deepCopy(src *entities.Config) *entities.Config {
	if src == nil {
		return nil
	}

	// Every field is a value except the slices below
	dst := *src

	if src.Deck.Sections != nil {
		dst.Deck.Sections = make([]string, len(src.Deck.Sections))
		copy(dst.Deck.Sections, src.Deck.Sections)
	}

	if src.Server.CORSOrigins != nil {
		dst.Server.CORSOrigins = make([]string, len(src.Server.CORSOrigins))
		copy(dst.Server.CORSOrigins, src.Server.CORSOrigins)
	}

	return &dst
}

// Ensure ConfigMerger implements ports.ConfigMerger
var _ ports.ConfigMerger = (*ConfigMerger)(nil)
