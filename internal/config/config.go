package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	State   StateConfig   `mapstructure:"state"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds catalog API configuration
type CatalogConfig struct {
	BaseURL  string `mapstructure:"base_url"` // API base endpoint
	APIKey   string `mapstructure:"api_key"`  // credential appended to every call
	Language string `mapstructure:"language"` // e.g. "en-US"
}

// StateConfig holds durable state configuration
type StateConfig struct {
	Dir string `mapstructure:"dir"` // bbolt database directory; "" = memory only
}

// UIConfig holds UI configuration
type UIConfig struct {
	MediaType string `mapstructure:"media_type"` // startup media type: "movie" or "tv"
	PageSize  int    `mapstructure:"page_size"`  // expected items per catalog page
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:  "https://api.themoviedb.org/3",
			APIKey:   "",
			Language: "en-US",
		},
		State: StateConfig{
			Dir: defaultStatePath(),
		},
		UI: UIConfig{
			MediaType: "movie",
			PageSize:  20,
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
		return filepath.Join(os.Getenv("APPDATA"), "reel", "reel.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel", "reel.log")
	}
}

// defaultStatePath returns the default state directory for the current OS
func defaultStatePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "reel", "state")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel", "state")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "reel")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides (REEL_CATALOG_API_KEY etc.)
	viper.SetEnvPrefix("REEL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if key := os.Getenv("REEL_CATALOG_API_KEY"); key != "" {
		cfg.Catalog.APIKey = key
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("catalog.base_url", cfg.Catalog.BaseURL)
	viper.Set("catalog.api_key", cfg.Catalog.APIKey)
	viper.Set("catalog.language", cfg.Catalog.Language)

	viper.Set("state.dir", cfg.State.Dir)

	viper.Set("ui.media_type", cfg.UI.MediaType)
	viper.Set("ui.page_size", cfg.UI.PageSize)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the catalog API key is set
func (c *Config) IsConfigured() bool {
	return c.Catalog.APIKey != ""
}
