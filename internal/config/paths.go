package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the stoplight home directory
const EnvHome = "STOPLIGHT_HOME"

// GetStoplightHome returns STOPLIGHT_HOME or ~/.stoplight default
func GetStoplightHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".stoplight"
		}
		return filepath.Join(homeDir, ".stoplight")
	}
	return ExpandPath(home)
}

// GetDBPath returns $STOPLIGHT_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetStoplightHome(), "state.db")
}

// GetSettingsPath returns $STOPLIGHT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetStoplightHome(), "settings.json")
}

// GetLockPath returns $STOPLIGHT_HOME/stoplight.lock
func GetLockPath() string {
	return filepath.Join(GetStoplightHome(), "stoplight.lock")
}

// GetHostKeyPath returns $STOPLIGHT_HOME/ssh_host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetStoplightHome(), "ssh_host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
