package config

import (
	"os"
	"strconv"

	"residualmap/internal/errors"
)

// Config represents the complete application configuration. Theme and palette
// values live here so renderers receive explicit configuration instead of
// relying on package-level state.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Paths    PathConfig
	Render   RenderConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds optional analysis persistence settings
type DatabaseConfig struct {
	URL     string
	Enabled bool
}

// PathConfig holds file system paths
type PathConfig struct {
	OutputDir string
}

// RenderConfig holds default chart theming as hex colors
type RenderConfig struct {
	ThemeSize   float64
	LabelSize   float64
	ColorLow    string
	ColorHigh   string
	ColorLabels string
	MinEdge     float64
	MaxEdge     float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Paths: PathConfig{
			OutputDir: getEnvOrDefault("OUTPUT_DIR", "out"),
		},
		Render: RenderConfig{
			ThemeSize:   getEnvFloatOrDefault("THEME_SIZE", 13),
			LabelSize:   getEnvFloatOrDefault("LABEL_SIZE", 11),
			ColorLow:    getEnvOrDefault("COLOR_LOW", "#2166ac"),
			ColorHigh:   getEnvOrDefault("COLOR_HIGH", "#b2182b"),
			ColorLabels: getEnvOrDefault("COLOR_LABELS", "#111111"),
			MinEdge:     getEnvFloatOrDefault("EDGE_MIN_WIDTH", 1),
			MaxEdge:     getEnvFloatOrDefault("EDGE_MAX_WIDTH", 5),
		},
	}
	config.Database.Enabled = config.Database.URL != ""

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validate(c *Config) error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	if c.Render.MinEdge <= 0 || c.Render.MaxEdge < c.Render.MinEdge {
		return errors.ConfigInvalid("edge width range must satisfy 0 < min <= max")
	}
	if c.Render.ThemeSize <= 0 || c.Render.LabelSize <= 0 {
		return errors.ConfigInvalid("font sizes must be positive")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
