// Package appinfo resolves the application display name used in export
// filenames and headers.
package appinfo

import (
	"os"
	"path/filepath"
)

// FallbackName is used when no better display name can be resolved
const FallbackName = "logview"

// Provider supplies the application display name
type Provider interface {
	DisplayName() string
}

// chainProvider resolves the display name through a fallback chain:
// configured display name, then the executable's base name, then a fixed
// literal.
type chainProvider struct {
	configured string
}

// NewProvider creates a provider preferring the configured name
func NewProvider(configured string) Provider {
	return chainProvider{configured: configured}
}

// DisplayName returns the first non-empty name in the chain
func (p chainProvider) DisplayName() string {
	if p.configured != "" {
		return p.configured
	}
	if exe, err := os.Executable(); err == nil {
		if name := filepath.Base(exe); name != "" && name != "." && name != string(filepath.Separator) {
			return name
		}
	}
	return FallbackName
}

// Static returns a provider with a fixed name, for tests
func Static(name string) Provider {
	return staticProvider(name)
}

type staticProvider string

func (p staticProvider) DisplayName() string {
	return string(p)
}
