package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working and config directories.
const FileName = "planet.yaml"

// Load builds the effective configuration. Values from Default are
// overridden by planet.yaml, which is in turn overridden by command-line
// flags. An explicit -config path must exist; the implicit locations are
// optional.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolvePath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func resolvePath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	return findConfigFile()
}

// findConfigFile returns the first planet.yaml found in the working
// directory or ConfigDir, or "" when there is none.
func findConfigFile() string {
	for _, dir := range []string{".", ConfigDir()} {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user planetgen directory: $XDG_CONFIG_HOME or
// ~/.config on Linux, Application Support on macOS, %AppData% on Windows.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		// No home directory.
		base, _ = filepath.Abs(".")
	}
	return filepath.Join(base, "planetgen")
}

// loadFromFile decodes path over cfg, so keys missing from the file keep
// their current values. An empty file is not an error.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
