package core

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger replaces the global logger with one honoring the configured
// level.
func NewLogger(level string) {
	parsedLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zap.L().Warn("Unknown log level, keeping info", zap.String("level", level))
		return
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parsedLevel)

	logger, err := config.Build()
	if err != nil {
		zap.L().Error("Failed to build logger", zap.Error(err))
		return
	}

	zap.ReplaceGlobals(logger)
}
