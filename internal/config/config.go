// Package config holds all swapmeet configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all swapmeet configuration.
type Config struct {
	// Gemini configures the description drafting upstream.
	Gemini GeminiConfig `yaml:"gemini"`

	// Seller is the identity stamped onto listings created through the
	// sell form. The demo has no accounts, so this is a placeholder.
	Seller string `yaml:"seller"`

	// Logging configures session logging.
	Logging LoggingConfig `yaml:"logging"`
}

// GeminiConfig configures the generation upstream.
type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model:   "gemini-2.5-flash",
			Timeout: "60s",
		},
		Seller: "CurrentUser",
		Logging: LoggingConfig{
			Debug: false,
			Level: "info",
		},
	}
}

// StateDir returns the directory for config, logs and other session
// droppings, normally ~/.swapmeet.
func StateDir() string {
	if dir := os.Getenv("SWAPMEET_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".swapmeet"
	}
	return filepath.Join(home, ".swapmeet")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(StateDir(), "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the
// file is absent, then applies environment overrides. Environment always
// wins over the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
// The file may hold a credential, so it is written 0600.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets the environment override the file. GEMINI_API_KEY
// is the SDK's canonical variable; API_KEY is accepted for compatibility
// with older deployments of this demo.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if model := os.Getenv("SWAPMEET_GEMINI_MODEL"); model != "" {
		c.Gemini.Model = model
	}
	if os.Getenv("SWAPMEET_DEBUG") == "1" {
		c.Logging.Debug = true
		c.Logging.Level = "debug"
	}
}

// GeminiTimeout parses the configured upstream timeout, falling back to
// one minute on absent or malformed values.
func (c *Config) GeminiTimeout() time.Duration {
	d, err := time.ParseDuration(c.Gemini.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}
