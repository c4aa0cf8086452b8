package config

import (
	"fmt"
	"os"
	"time"

	"golang-ipcalc/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Output formats for rendered subnet reports.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Duration wraps time.Duration so values like "3s" parse from YAML.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("failed to parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// OutputConfig controls how subnet reports are rendered.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
}

// ServeConfig holds the HTTP server settings for the serve command.
type ServeConfig struct {
	Port         int      `yaml:"port,omitempty"`
	ReadTimeout  Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout Duration `yaml:"write_timeout,omitempty"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Output  OutputConfig      `yaml:"output"`
	Serve   ServeConfig       `yaml:"serve"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "simple",
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Serve: ServeConfig{
			Port:         8080,
			ReadTimeout:  Duration(3 * time.Second),
			WriteTimeout: Duration(3 * time.Second),
		},
	}
}

// Load loads configuration from a YAML file. An empty path returns the
// defaults. Omitted fields fall back to their default values.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		return fmt.Errorf("output format must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format)
	}
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve port must be between 1 and 65535, got %d", c.Serve.Port)
	}
	if c.Serve.ReadTimeout <= 0 || c.Serve.WriteTimeout <= 0 {
		return fmt.Errorf("serve timeouts must be positive")
	}
	return nil
}
