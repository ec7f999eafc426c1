package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the project-level configuration file.
const ConfigFileName = ".dirlist.yaml"

// Loader handles loading dirlist configuration
type Loader struct {
	homeDir    string
	projectDir string
}

// NewLoader creates a new configuration loader
func NewLoader(homeDir, projectDir string) *Loader {
	return &Loader{
		homeDir:    homeDir,
		projectDir: projectDir,
	}
}

// DefaultLoader creates a loader for the current user and working directory.
func DefaultLoader() *Loader {
	homeDir, _ := os.UserHomeDir()
	projectDir, _ := os.Getwd()
	return NewLoader(homeDir, projectDir)
}

// Load loads configuration from both the global and project-specific files.
// Missing files are fine; the zero-value Config is a complete default.
func (l *Loader) Load() (*Config, error) {
	config := &Config{}

	// Load global config first
	if l.homeDir != "" {
		globalPath := filepath.Join(l.homeDir, ".config", "dirlist", "config.yaml")
		if err := l.loadFile(globalPath, config); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load global config: %w", err)
		}
	}

	// Load project config (overrides global)
	if l.projectDir != "" {
		projectPath := filepath.Join(l.projectDir, ConfigFileName)
		if err := l.loadFile(projectPath, config); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load project config: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFile loads a single configuration file into config
func (l *Loader) loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
