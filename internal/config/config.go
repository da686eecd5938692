package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. WIDGETDASH_UI_TITLE
const EnvPrefix = "WIDGETDASH"

// Config represents the application configuration
type Config struct {
	Version  int        `toml:"version" mapstructure:"version"`
	SeedPath string     `toml:"seed_path" mapstructure:"seed_path"`
	Log      LogConfig  `toml:"log" mapstructure:"log"`
	UI       UISettings `toml:"ui" mapstructure:"ui"`
}

// LogConfig controls the log file
type LogConfig struct {
	File       string `toml:"file" mapstructure:"file"`
	Level      string `toml:"level" mapstructure:"level"`
	MaxSizeMB  int    `toml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title            string `toml:"title" mapstructure:"title"`
	SearchDebounceMs int    `toml:"search_debounce_ms" mapstructure:"search_debounce_ms"`
	SubmitDelayMs    int    `toml:"submit_delay_ms" mapstructure:"submit_delay_ms"`
	RefreshDelayMs   int    `toml:"refresh_delay_ms" mapstructure:"refresh_delay_ms"`
	MarkdownStyle    string `toml:"markdown_style" mapstructure:"markdown_style"`
}

// SearchDebounce is the quiet period before a typed query is applied
func (u UISettings) SearchDebounce() time.Duration {
	return time.Duration(u.SearchDebounceMs) * time.Millisecond
}

// SubmitDelay is the pause between submitting the add form and the store update
func (u UISettings) SubmitDelay() time.Duration {
	return time.Duration(u.SubmitDelayMs) * time.Millisecond
}

// RefreshDelay is how long the loading state shows on refresh
func (u UISettings) RefreshDelay() time.Duration {
	return time.Duration(u.RefreshDelayMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user's config dir
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultDir is the directory holding config and logs
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "widgetdash")
}

// DefaultPath is where the config file lives unless overridden
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's file. A missing file yields defaults.
func (cs *configService) Load() (*Config, error) {
	return load(cs.filePath, true)
}

// Save writes the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path that must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return load(path, false)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func load(path string, allowMissing bool) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if !missing {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if !allowMissing {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("seed_path", d.SeedPath)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.search_debounce_ms", d.UI.SearchDebounceMs)
	v.SetDefault("ui.submit_delay_ms", d.UI.SubmitDelayMs)
	v.SetDefault("ui.refresh_delay_ms", d.UI.RefreshDelayMs)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
}

// Validate rejects settings the UI can't work with
func (c *Config) Validate() error {
	if c.UI.SearchDebounceMs < 0 || c.UI.SubmitDelayMs < 0 || c.UI.RefreshDelayMs < 0 {
		return fmt.Errorf("invalid config: ui delays must not be negative")
	}
	switch c.UI.MarkdownStyle {
	case "dark", "light", "notty", "ascii", "auto":
	default:
		return fmt.Errorf("invalid config: unknown markdown_style %q", c.UI.MarkdownStyle)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		SeedPath: "",
		Log: LogConfig{
			File:       filepath.Join(DefaultDir(), "widgetdash.log"),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		UI: UISettings{
			Title:            "CNAPP Dashboard",
			SearchDebounceMs: 300,
			SubmitDelayMs:    500,
			RefreshDelayMs:   500,
			MarkdownStyle:    "dark",
		},
	}
}
