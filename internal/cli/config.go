package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// presetsFileName is the preset file looked up in the config directory.
const presetsFileName = "presets.toml"

// Config is the environment configuration of the CLI.
type Config struct {
	PresetsFile string `env:"TWICURL_PRESETS"`
	Auth        string `env:"TWICURL_AUTH"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// presetsPath returns the preset file to read and whether it was chosen
// explicitly (flag or environment) rather than defaulted.
func (cfg Config) presetsPath(flag string) (string, bool, error) {
	if flag != "" {
		return flag, true, nil
	}
	if cfg.PresetsFile != "" {
		return cfg.PresetsFile, true, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, presetsFileName), false, nil
}

// configDir returns the config directory using XDG standard (~/.config/twicurl/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
