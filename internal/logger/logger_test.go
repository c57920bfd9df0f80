package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"trivia-quiz/internal/config"
)

func TestNewHonoursLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"
	log, err := New(cfg)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug disabled at warn level")
	}

	cfg.Log.Level = "loud"
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
