package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	UI      UIConfig      `mapstructure:"ui"`
	Viewer  ViewerConfig  `mapstructure:"viewer"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds recipe API configuration
type APIConfig struct {
	BaseURL   string `mapstructure:"base_url"`   // API root, search.php is resolved against it
	UserAgent string `mapstructure:"user_agent"` // User-Agent header
}

// SessionConfig holds search session behavior
type SessionConfig struct {
	DiscardStale bool `mapstructure:"discard_stale"` // Drop results of superseded searches
}

// UIConfig holds UI configuration
type UIConfig struct {
	ExcerptLength int `mapstructure:"excerpt_length"` // Instruction preview length in characters
}

// ViewerConfig holds the external image viewer configuration
type ViewerConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

const (
	envPrefix            = "MEALFINDER"
	defaultBaseURL       = "https://www.themealdb.com/api/json/v1/1/"
	defaultUserAgent     = "mealfinder/1.0"
	DefaultExcerptLength = 100
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   defaultBaseURL,
			UserAgent: defaultUserAgent,
		},
		Session: SessionConfig{
			DiscardStale: false,
		},
		UI: UIConfig{
			ExcerptLength: DefaultExcerptLength,
		},
		Viewer: ViewerConfig{
			Command: "",
			Args:    []string{},
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mealfinder", "mealfinder.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "mealfinder", "mealfinder.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mealfinder")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "mealfinder")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit path must exist; otherwise config.yaml is looked up in the
// default config directory and the working directory, and a missing file
// means defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newViper builds a viper instance seeded with defaults so every key can be
// overridden from the environment (MEALFINDER_API_BASE_URL, ...)
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()

	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.user_agent", defaults.API.UserAgent)
	v.SetDefault("session.discard_stale", defaults.Session.DiscardStale)
	v.SetDefault("ui.excerpt_length", defaults.UI.ExcerptLength)
	v.SetDefault("viewer.command", defaults.Viewer.Command)
	v.SetDefault("viewer.args", defaults.Viewer.Args)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Validate checks values that would otherwise fail later in confusing ways
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.UI.ExcerptLength <= 0 {
		return fmt.Errorf("ui.excerpt_length must be positive, got %d", c.UI.ExcerptLength)
	}
	return nil
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	return defaultConfigPath()
}
