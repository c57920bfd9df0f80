package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trivia-quiz/internal/config"
)

// New builds the process logger. Production environments get JSON output.
func New(cfg config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Log.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Log.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	// stdout belongs to the terminal surface
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
