// Package config provides configuration management for webnotify with Viper
// integration and XDG Base Directory compliance.
package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "webnotify"
	databaseName = "webnotify.sqlite"
)

// File permission constants
const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// GetConfigDir returns the configuration directory for webnotify
// ($XDG_CONFIG_HOME/webnotify, default ~/.config/webnotify).
func GetConfigDir() (string, error) {
	if env := os.Getenv("WEBNOTIFY_CONFIG_DIR"); env != "" {
		return env, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetDataDir returns the data directory for webnotify
// ($XDG_DATA_HOME/webnotify, default ~/.local/share/webnotify).
func GetDataDir() (string, error) {
	if env := os.Getenv("WEBNOTIFY_DATA_DIR"); env != "" {
		return env, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, appName), nil
}

// GetDatabaseFile returns the default database file path.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// EnsureDirectories creates the config and data directories if missing.
func EnsureDirectories() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return err
	}

	dataDir, err := GetDataDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dataDir, dirPerm)
}
