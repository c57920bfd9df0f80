package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Questions.Amount != 10 || cfg.Questions.Type != "multiple" {
		t.Fatalf("unexpected question defaults %+v", cfg.Questions)
	}
	if cfg.Identity.Backend != BackendFile || cfg.Identity.TTLDays != 7 || cfg.Identity.Cookie != "username" {
		t.Fatalf("unexpected identity defaults %+v", cfg.Identity)
	}
	if cfg.Ledger.Key != "triviaScores" {
		t.Fatalf("unexpected ledger key %q", cfg.Ledger.Key)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: "9090"
questions:
  difficulty: hard
  timeout: 3s
identity:
  backend: redis
  ttl_days: 30
ledger:
  backend: postgres
redis:
  addr: localhost:6379
postgres:
  url: postgres://quiz@localhost/quiz
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Questions.Difficulty != "hard" || cfg.Identity.TTLDays != 30 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Questions.Amount != 10 {
		t.Fatalf("expected default amount kept, got %d", cfg.Questions.Amount)
	}
	if got := TTLDuration(cfg.Questions.Timeout, time.Second); got != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", got)
	}
}

func TestLoadRejectsIncompleteBackends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ledger:\n  backend: redis\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for redis ledger without address")
	}
}

func TestTTLDurationFallback(t *testing.T) {
	if got := TTLDuration("", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback, got %v", got)
	}
	if got := TTLDuration("garbage", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for invalid value, got %v", got)
	}
}
