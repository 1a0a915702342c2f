package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/charliek/logview/internal/constants"
	"github.com/charliek/logview/internal/domain"
)

// Config represents the top-level logview configuration
type Config struct {
	// AppName is the display name used in export filenames and headers.
	// When empty the executable name is used.
	AppName string `yaml:"app_name"`

	// EnvFile is an optional dotenv file applied as overrides after the
	// YAML is parsed (LOGVIEW_* variables).
	EnvFile string `yaml:"env_file"`

	Source            SourceConfig `yaml:"source"`
	DefaultSubsystems []string     `yaml:"default_subsystems"`
	Since             string       `yaml:"since"`
	API               APIConfig    `yaml:"api"`
}

// SourceConfig defines where log entries are fetched from
type SourceConfig struct {
	Path string `yaml:"path"`
}

// APIConfig defines the HTTP API configuration
type APIConfig struct {
	Port  int    `yaml:"port"`
	Host  string `yaml:"host"`
	Token string `yaml:"token"` // non-empty enables bearer auth
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Parse parses configuration from YAML bytes, applies defaults and the
// env-file overlay, and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.EnvFile != "" {
		env, err := godotenv.Read(cfg.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", cfg.EnvFile, err)
		}
		applyEnvOverrides(&cfg, env)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.Port == 0 {
		cfg.API.Port = constants.DefaultAPIPort
	}
	if cfg.API.Host == "" {
		cfg.API.Host = constants.DefaultAPIHost
	}
	if cfg.Since == "" {
		cfg.Since = constants.DefaultSinceWindow.String()
	}
}

// applyEnvOverrides layers LOGVIEW_* variables over the parsed config
func applyEnvOverrides(cfg *Config, env map[string]string) {
	if v := env["LOGVIEW_APP_NAME"]; v != "" {
		cfg.AppName = v
	}
	if v := env["LOGVIEW_SOURCE_PATH"]; v != "" {
		cfg.Source.Path = v
	}
	if v := env["LOGVIEW_API_TOKEN"]; v != "" {
		cfg.API.Token = v
	}
	if v := env["LOGVIEW_SINCE"]; v != "" {
		cfg.Since = v
	}
}

// SinceWindow returns the configured fetch window as a duration
func (c *Config) SinceWindow() time.Duration {
	d, err := time.ParseDuration(c.Since)
	if err != nil {
		return constants.DefaultSinceWindow
	}
	return d
}
