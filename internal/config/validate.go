package config

import (
	"fmt"
	"time"

	"github.com/charliek/logview/internal/domain"
)

// Validate checks a parsed configuration for values that cannot work
func Validate(cfg *Config) error {
	if cfg.API.Port < 1 || cfg.API.Port > 65535 {
		return fmt.Errorf("%w: api port %d out of range", domain.ErrInvalidConfig, cfg.API.Port)
	}

	if cfg.Since != "" {
		d, err := time.ParseDuration(cfg.Since)
		if err != nil {
			return fmt.Errorf("%w: since %q: %v", domain.ErrInvalidConfig, cfg.Since, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: since must be positive, got %q", domain.ErrInvalidConfig, cfg.Since)
		}
	}

	for _, s := range cfg.DefaultSubsystems {
		if s == "" {
			return fmt.Errorf("%w: default_subsystems must not contain empty names", domain.ErrInvalidConfig)
		}
	}

	return nil
}
