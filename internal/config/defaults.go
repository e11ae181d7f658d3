package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	stateDir := defaultStateDir()
	return map[string]interface{}{
		"db_path":   filepath.Join(stateDir, "remnd.sqlite3"),
		"log_path":  filepath.Join(stateDir, "remnd.log"),
		"log_level": "info",

		"renotify_interval": "24h",
		"catchup_expire":    "10s",

		"notify_limit":   100,
		"renotify_limit": 500,
		"catchup_limit":  500,
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func DefaultConfigPath() string {
	return "~/.config/remnd/config.yaml"
}

// defaultStateDir resolves the XDG state directory for remnd, falling back
// to ~/.local/state when XDG_STATE_HOME is unset.
func defaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "remnd")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "remnd"
	}
	return filepath.Join(home, ".local", "state", "remnd")
}
