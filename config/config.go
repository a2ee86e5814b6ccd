// Package config loads editor settings from a YAML file, applying defaults
// field-wise for anything left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RedisConfig locates the persistence server. An empty Addr selects the
// in-memory store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Config is the full editor configuration.
type Config struct {
	HistoryLimit int         `yaml:"history_limit"`
	ExportDir    string      `yaml:"export_dir"`
	Redis        RedisConfig `yaml:"redis"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		HistoryLimit: 100,
		ExportDir:    ".",
	}
}

// Load reads a config file. A missing file yields defaults; a malformed
// file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = Default().HistoryLimit
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = Default().ExportDir
	}
	return cfg, nil
}
