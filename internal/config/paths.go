package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/create-tap-react/config.yml
// - macOS: ~/Library/Application Support/create-tap-react/config.yml
// - Windows: %APPDATA%\create-tap-react\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "create-tap-react", "config.yml"), nil
}

// LegacyUserConfigPath returns the path to the legacy JSON config file: ~/.create-tap-react.json
func LegacyUserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".create-tap-react.json"), nil
}
