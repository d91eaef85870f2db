// Package state locates and writes the CLI's files under the user config
// directory.
package state

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the directory name under the user config home.
	ConfigDirName = "go-hypixel"

	ConfigFileName = "config.yaml"
	EnvFileName    = ".env"
)

// GetConfigDir returns $XDG_CONFIG_HOME/go-hypixel, falling back to
// ~/.config/go-hypixel. The directory is not created.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the path of the YAML config file.
func GetConfigPath() (string, error) {
	return inConfigDir(ConfigFileName)
}

// GetEnvPath returns the path of the user-wide .env file.
func GetEnvPath() (string, error) {
	return inConfigDir(EnvFileName)
}

func inConfigDir(name string) (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, name), nil
}

// EnsureDir ensures that a directory exists, creating it if necessary.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return fmt.Errorf("failed to ensure directory %s: %w", path, err)
	}
	return nil
}
