package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/yndnr/enigma-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".enigma", "config.yaml")
}

// DefaultHistoryPath returns the default shell history path.
func DefaultHistoryPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".enigma", "history")
}

// Load builds the configuration from defaults, the config file,
// ENIGMA_* environment variables and overrides, in increasing priority.
//
// An empty path falls back to DefaultConfigPath, which may be absent. An
// explicitly named file must exist.
func Load(path string, overrides map[string]any) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		path = ""
	}

	cfg := Default()
	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOverrides(overrides),
	)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if cfg.Shell.History == "" {
		cfg.Shell.History = DefaultHistoryPath()
	}
	return cfg, nil
}
