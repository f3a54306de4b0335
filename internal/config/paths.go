package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AppName names the config directory.
const AppName = "pdfdoctor"

// Dir is <UserConfigDir>/pdfdoctor, or ~/pdfdoctor when the platform has no
// config base.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, AppName), nil
}

// Path returns the config file path: <Dir>/config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
