package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if !strings.HasSuffix(cfg.DBPath, filepath.Join("remnd", "remnd.sqlite3")) {
		t.Errorf("unexpected default db path: %s", cfg.DBPath)
	}
	if cfg.RenotifyInterval != 24*time.Hour {
		t.Errorf("renotify_interval = %v, want 24h", cfg.RenotifyInterval)
	}
	if cfg.CatchupExpire != 10*time.Second {
		t.Errorf("catchup_expire = %v, want 10s", cfg.CatchupExpire)
	}
	if cfg.NotifyLimit != 100 || cfg.RenotifyLimit != 500 || cfg.CatchupLimit != 500 {
		t.Errorf("unexpected default limits: %d/%d/%d", cfg.NotifyLimit, cfg.RenotifyLimit, cfg.CatchupLimit)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REMND_DB_PATH", "/tmp/custom.sqlite3")
	t.Setenv("REMND_RENOTIFY_INTERVAL", "12h")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DBPath != "/tmp/custom.sqlite3" {
		t.Errorf("db_path = %s, want /tmp/custom.sqlite3", cfg.DBPath)
	}
	if cfg.RenotifyInterval != 12*time.Hour {
		t.Errorf("renotify_interval = %v, want 12h", cfg.RenotifyInterval)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "db_path: /tmp/from-file.sqlite3\nnotify_limit: 25\n"
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DBPath != "/tmp/from-file.sqlite3" {
		t.Errorf("db_path = %s, want /tmp/from-file.sqlite3", cfg.DBPath)
	}
	if cfg.NotifyLimit != 25 {
		t.Errorf("notify_limit = %d, want 25", cfg.NotifyLimit)
	}
}

func TestXDGStateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DBPath != filepath.Join("/tmp/state", "remnd", "remnd.sqlite3") {
		t.Errorf("db_path = %s, want it under XDG_STATE_HOME", cfg.DBPath)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Config{DBPath: "x", RenotifyInterval: 0, NotifyLimit: 1, RenotifyLimit: 1, CatchupLimit: 1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero renotify_interval")
	}

	cfg = Config{DBPath: "", RenotifyInterval: time.Hour, NotifyLimit: 1, RenotifyLimit: 1, CatchupLimit: 1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty db_path")
	}
}
