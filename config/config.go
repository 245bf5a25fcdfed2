// Package config loads the ambient, non-domain settings for fedcal-go: where
// the status dataset lives, how the library logs, and the CLI's default
// output format. Grounded on the teacher's config.go/ConfigManager
// (default-then-file-then-environment layering, YAML via gopkg.in/yaml.v3),
// narrowed from a multi-country holiday-provider configuration to the single
// fixed US federal calendar this module implements.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full set of ambient knobs fedcal-go reads at startup.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
	CLI     CLIConfig     `yaml:"cli"`
}

// DatasetConfig controls where the status interval store loads its data
// from. UseEmbedded takes priority; Path is consulted only when it is false.
type DatasetConfig struct {
	UseEmbedded bool   `yaml:"use_embedded"`
	Path        string `yaml:"path"`
}

// LoggingConfig controls the zerolog logger used by dataset load, lazy
// initialization, and the CLI.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json", "console"
}

// CLIConfig controls cmd/fedcal's default behavior absent an explicit flag.
type CLIConfig struct {
	DefaultFormat string `yaml:"default_format"` // "table", "json", "csv"
}

// ConfigManager loads a Config by layering defaults, an optional YAML file,
// and environment variable overrides, in that order.
type ConfigManager struct {
	config *Config
	paths  []string
}

// NewConfigManager builds a ConfigManager that searches the usual local and
// per-user locations for a fedcal config file.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		paths: []string{
			"fedcal.yaml",
			"fedcal.yml",
			"config/fedcal.yaml",
			"/etc/fedcal/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".fedcal.yaml"),
		},
	}
}

// LoadConfig loads configuration from defaults, the first matching file on
// the search path, and the environment, in that order.
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	config := cm.getDefaultConfig()

	for _, path := range cm.paths {
		if err := cm.loadFromFile(path, config); err == nil {
			break
		}
	}

	cm.loadFromEnvironment(config)

	if err := cm.validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cm.config = config
	return config, nil
}

// LoadConfigFromFile loads configuration from defaults, a specific file, and
// the environment, in that order.
func (cm *ConfigManager) LoadConfigFromFile(filePath string) (*Config, error) {
	config := cm.getDefaultConfig()

	if err := cm.loadFromFile(filePath, config); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", filePath, err)
	}

	cm.loadFromEnvironment(config)

	if err := cm.validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cm.config = config
	return config, nil
}

// GetConfig returns the current configuration, loading the default on first
// use if nothing has been loaded yet.
func (cm *ConfigManager) GetConfig() *Config {
	if cm.config == nil {
		config, _ := cm.LoadConfig()
		return config
	}
	return cm.config
}

func (cm *ConfigManager) getDefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{UseEmbedded: true},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		CLI:     CLIConfig{DefaultFormat: "table"},
	}
}

func (cm *ConfigManager) loadFromFile(path string, config *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func (cm *ConfigManager) loadFromEnvironment(config *Config) {
	if env := os.Getenv("FEDCAL_DATASET_PATH"); env != "" {
		config.Dataset.Path = env
		config.Dataset.UseEmbedded = false
	}
	if env := os.Getenv("FEDCAL_LOG_LEVEL"); env != "" {
		config.Logging.Level = env
	}
	if env := os.Getenv("FEDCAL_LOG_FORMAT"); env != "" {
		config.Logging.Format = env
	}
	if env := os.Getenv("FEDCAL_DEFAULT_FORMAT"); env != "" {
		config.CLI.DefaultFormat = env
	}
}

func (cm *ConfigManager) validateConfig(config *Config) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, strings.ToLower(config.Logging.Level)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %v)", config.Logging.Level, validLevels)
	}

	validLogFormats := []string{"json", "console"}
	if !contains(validLogFormats, strings.ToLower(config.Logging.Format)) {
		return fmt.Errorf("invalid log format: %s (must be one of: %v)", config.Logging.Format, validLogFormats)
	}

	validOutputFormats := []string{"table", "json", "csv"}
	if !contains(validOutputFormats, strings.ToLower(config.CLI.DefaultFormat)) {
		return fmt.Errorf("invalid default output format: %s (must be one of: %v)", config.CLI.DefaultFormat, validOutputFormats)
	}

	if !config.Dataset.UseEmbedded && config.Dataset.Path == "" {
		return fmt.Errorf("dataset.use_embedded is false but dataset.path is empty")
	}

	return nil
}

func contains(options []string, want string) bool {
	for _, o := range options {
		if o == want {
			return true
		}
	}
	return false
}

// SaveConfig writes the current configuration to path as YAML.
func (cm *ConfigManager) SaveConfig(path string) error {
	if cm.config == nil {
		return fmt.Errorf("no configuration loaded")
	}
	data, err := yaml.Marshal(cm.config)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultConfigManager is the package-level ConfigManager used by cmd/fedcal
// when no explicit manager is constructed.
var DefaultConfigManager = NewConfigManager()
