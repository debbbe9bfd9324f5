package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL" default:"info"`
}

// NewLogger builds a named production logger with the configured level.
func NewLogger(cfg Log, name string) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.DisableStacktrace = true

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatal("logger build ", err)
	}
	return logger.Named(name)
}
