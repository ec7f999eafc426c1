// Package config provides configuration loading for dirlist.
package config

import (
	"fmt"

	"github.com/akfite/dirlist/internal/core/lister"
)

// Config holds user-configurable defaults for dirlist.
type Config struct {
	// Defaults are applied to every listing unless overridden by flags
	// or tool arguments.
	Defaults lister.ListOptions `yaml:"defaults"`

	// Output controls how CLI results are rendered.
	Output OutputConfig `yaml:"output,omitempty"`
}

// OutputConfig controls CLI output rendering.
type OutputConfig struct {
	// Format selects the default output format ("pretty" or "json").
	Format string `yaml:"format,omitempty"`
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "pretty", "json":
		// Valid formats
	default:
		return fmt.Errorf("output: unknown format %q", c.Output.Format)
	}

	return nil
}
