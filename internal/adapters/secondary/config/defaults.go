package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
)

// DefaultRevealPath is the reveal.js distribution used when none is configured
const DefaultRevealPath = "https://unpkg.com/reveal.js@5.1.0/"

// GetDefaultConfig returns the default configuration with environment overrides
func GetDefaultConfig() *entities.Config {
	config := &entities.Config{
		Deck: entities.DeckConfig{
			Author:     getEnvOrDefault("REVEALDECK_AUTHOR", ""),
			Conference: getEnvOrDefault("REVEALDECK_CONFERENCE", ""),
			RevealPath: getEnvOrDefault("REVEALDECK_REVEAL_PATH", DefaultRevealPath),
			Theme:      getEnvOrDefault("REVEALDECK_THEME", "simple"),
			Width:      getEnvIntOrDefault("REVEALDECK_WIDTH", 1600),
			Height:     getEnvIntOrDefault("REVEALDECK_HEIGHT", 1000),
			Margin:     getEnvFloatOrDefault("REVEALDECK_MARGIN", 0.1),
			Draft:      getEnvBoolOrDefault("REVEALDECK_DRAFT", false),
			Embed:      getEnvBoolOrDefault("REVEALDECK_EMBED", false),
		},
		Markup: entities.MarkupConfig{
			Typographer: getEnvBoolOrDefault("REVEALDECK_TYPOGRAPHER", false),
			HardWraps:   false,
			Sanitize:    getEnvBoolOrDefault("REVEALDECK_SANITIZE", false),
		},
		Media: entities.MediaConfig{
			FetchTimeout: getEnvIntOrDefault("REVEALDECK_FETCH_TIMEOUT", 0),
			UserAgent:    getEnvOrDefault("REVEALDECK_USER_AGENT", "revealdeck"),
		},
		Output: entities.OutputConfig{
			Filename: getEnvOrDefault("REVEALDECK_OUTPUT", "index.html"),
		},
		Server: entities.ServerConfig{
			Host:            getEnvOrDefault("REVEALDECK_HOST", "localhost"),
			Port:            getEnvIntOrDefault("REVEALDECK_PORT", 8000),
			ReadTimeout:     getEnvIntOrDefault("REVEALDECK_READ_TIMEOUT", 30),
			WriteTimeout:    getEnvIntOrDefault("REVEALDECK_WRITE_TIMEOUT", 30),
			ShutdownTimeout: getEnvIntOrDefault("REVEALDECK_SHUTDOWN_TIMEOUT", 5),
			CORSOrigins: getEnvSliceOrDefault("REVEALDECK_CORS_ORIGINS", []string{
				"http://localhost:8000",
				"http://127.0.0.1:8000",
			}),
		},
		Watcher: entities.WatcherConfig{
			DebounceMs: getEnvIntOrDefault("REVEALDECK_WATCH_DEBOUNCE", 300),
		},
		Browser: entities.BrowserConfig{
			AutoOpen: getEnvBoolOrDefault("REVEALDECK_BROWSER_AUTO_OPEN", false),
		},
		Logging: entities.LoggingConfig{
			Level:      getEnvOrDefault("REVEALDECK_LOG_LEVEL", "info"),
			JSONFormat: getEnvBoolOrDefault("REVEALDECK_LOG_JSON", false),
			File:       getEnvOrDefault("REVEALDECK_LOG_FILE", ""),
		},
	}

	if sections := getEnvSliceOrDefault("REVEALDECK_SECTIONS", nil); sections != nil {
		config.Deck.Sections = sections
	}

	return config
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloatOrDefault returns environment variable as float64 or default
func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvSliceOrDefault returns environment variable as slice or default
func getEnvSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		// Split by comma and trim whitespace
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
