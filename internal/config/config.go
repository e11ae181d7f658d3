package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds everything a single remnd invocation needs. Values come from
// built-in defaults, then an optional YAML config file, then REMND_*
// environment variables, in increasing precedence.
type Config struct {
	DBPath   string `koanf:"db_path"`
	LogPath  string `koanf:"log_path"`
	LogLevel string `koanf:"log_level"`

	RenotifyInterval time.Duration `koanf:"renotify_interval"`
	CatchupExpire    time.Duration `koanf:"catchup_expire"`

	NotifyLimit   int `koanf:"notify_limit"`
	RenotifyLimit int `koanf:"renotify_limit"`
	CatchupLimit  int `koanf:"catchup_limit"`
}

func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider("REMND_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "REMND_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.LogPath = expandPath(cfg.LogPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.RenotifyInterval <= 0 {
		return fmt.Errorf("renotify_interval must be positive")
	}
	if c.NotifyLimit <= 0 || c.RenotifyLimit <= 0 || c.CatchupLimit <= 0 {
		return fmt.Errorf("notification limits must be positive")
	}
	return nil
}

func expandPath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
