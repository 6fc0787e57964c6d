package cli

import (
	"os"
	"path/filepath"
)

// xdgPath joins elem under $env, or under ~/fallback when env is unset.
func xdgPath(env, fallback string, elem ...string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(append([]string{base}, elem...)...), nil
}

// cacheDir is $XDG_CACHE_HOME/boxlayout.
func cacheDir() (string, error) {
	return xdgPath("XDG_CACHE_HOME", ".cache", appName)
}

// configPath is $XDG_CONFIG_HOME/boxlayout/config.toml.
func configPath() (string, error) {
	return xdgPath("XDG_CONFIG_HOME", ".config", appName, "config.toml")
}
