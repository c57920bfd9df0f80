package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names accepted by identity.backend and ledger.backend.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Questions struct {
		URL        string `yaml:"url"`
		Amount     int    `yaml:"amount"`
		Type       string `yaml:"type"`
		Category   int    `yaml:"category"`
		Difficulty string `yaml:"difficulty"`
		Timeout    string `yaml:"timeout"`
	} `yaml:"questions"`
	Identity struct {
		Backend string `yaml:"backend"`
		Cookie  string `yaml:"cookie"`
		TTLDays int    `yaml:"ttl_days"`
	} `yaml:"identity"`
	Ledger struct {
		Backend string `yaml:"backend"`
		Key     string `yaml:"key"`
	} `yaml:"ledger"`
	Storage struct {
		Dir string `yaml:"dir"`
	} `yaml:"storage"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Log struct {
		Env   string `yaml:"env"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Questions.URL = "https://opentdb.com/api.php"
	cfg.Questions.Amount = 10
	cfg.Questions.Type = "multiple"
	cfg.Questions.Timeout = "10s"
	cfg.Identity.Backend = BackendFile
	cfg.Identity.Cookie = "username"
	cfg.Identity.TTLDays = 7
	cfg.Ledger.Backend = BackendFile
	cfg.Ledger.Key = "triviaScores"
	cfg.Storage.Dir = ".trivia"
	cfg.Log.Env = "development"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads YAML config from path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks backend names and the settings they depend on.
func (c Config) Validate() error {
	switch c.Identity.Backend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("identity backend %q needs redis.addr", c.Identity.Backend)
		}
	default:
		return fmt.Errorf("unknown identity backend %q", c.Identity.Backend)
	}
	switch c.Ledger.Backend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("ledger backend %q needs redis.addr", c.Ledger.Backend)
		}
	case BackendPostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("ledger backend %q needs postgres.url", c.Ledger.Backend)
		}
	default:
		return fmt.Errorf("unknown ledger backend %q", c.Ledger.Backend)
	}
	if c.Questions.Amount <= 0 {
		return fmt.Errorf("questions.amount must be positive, got %d", c.Questions.Amount)
	}
	return nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
