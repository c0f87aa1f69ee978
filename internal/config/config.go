// create-tap-react - Interactive React project scaffolding
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/create-tap-react

// Package config provides layered configuration for create-tap-react using koanf.
// Configuration is loaded with priority: environment variables (TAPREACT_*) >
// user config (~/.config/create-tap-react/config.yml) > defaults. A legacy JSON
// user config (~/.create-tap-react.json) is still read, with a deprecation warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TAPREACT_"

// Configuration represents the create-tap-react configuration.
type Configuration struct {
	// RemoteHost is the base URL (or local directory) that template
	// coordinates like owner/name are resolved against.
	RemoteHost string `koanf:"remote_host" validate:"required"`

	// DefaultProjectName is offered as the answer to the project name prompt.
	DefaultProjectName string `koanf:"default_project_name" validate:"required"`

	// FetchTimeout bounds the template download. 0 disables the timeout.
	FetchTimeout time.Duration `koanf:"fetch_timeout" validate:"min=0"`

	// InstallTimeout bounds the dependency install command. 0 disables the timeout.
	InstallTimeout time.Duration `koanf:"install_timeout" validate:"min=0"`

	// SkipInstall skips the dependency install step entirely.
	SkipInstall bool `koanf:"skip_install"`

	// Debug enables [debug] diagnostics on stderr.
	Debug bool `koanf:"debug"`

	// ASCII forces ASCII progress symbols even on Unicode terminals.
	ASCII bool `koanf:"ascii"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// UserConfigPath overrides the user YAML config path.
	UserConfigPath string
	// LegacyConfigPath overrides the legacy JSON config path.
	LegacyConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from the default locations and the environment.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	loadDefaults(k)

	if err := loadUserConfig(k, opts, warningWriter); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user YAML config, or the legacy JSON config when
// only that one exists. Warns if both exist (YAML used, JSON ignored).
func loadUserConfig(k *koanf.Koanf, opts LoadOptions, warningWriter io.Writer) error {
	yamlPath := opts.UserConfigPath
	if yamlPath == "" {
		yamlPath, _ = UserConfigPath()
	}
	legacyPath := opts.LegacyConfigPath
	if legacyPath == "" {
		legacyPath, _ = LegacyUserConfigPath()
	}

	yamlExists := fileExists(yamlPath)
	legacyExists := fileExists(legacyPath)

	switch {
	case yamlExists:
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return fmt.Errorf("validating user config: %w", err)
		}
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading user config %s: %w", yamlPath, err)
		}
		if legacyExists && !opts.SkipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n\n", legacyPath, yamlPath)
		}
	case legacyExists:
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy config %s: %w", legacyPath, err)
		}
		if !opts.SkipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Move its settings to %s\n\n", yamlPath)
		}
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.RemoteHost = strings.TrimRight(strings.TrimSpace(cfg.RemoteHost), "/")
	cfg.DefaultProjectName = strings.TrimSpace(cfg.DefaultProjectName)

	if err := ValidateConfigValues(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: TAPREACT_REMOTE_HOST -> remote_host
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
