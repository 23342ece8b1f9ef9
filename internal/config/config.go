// Package config loads the deezmeta CLI configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// BaseURL points the client at an alternate API root, e.g. a
	// local recording proxy. Empty means the public API.
	BaseURL string `koanf:"base_url"`

	// Limit caps how many rows of list output get printed.
	Limit int `koanf:"limit"`
}

const defaultLimit = 10

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{Limit: defaultLimit}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Limit <= 0 {
		cfg.Limit = defaultLimit
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/deezmeta/config.toml
		filepath.Join(xdg.ConfigHome, "deezmeta", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}
