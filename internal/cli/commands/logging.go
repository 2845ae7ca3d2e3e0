package commands

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger creates a console logger writing to stderr, so diagnostics
// never mix with extracted data on stdout. Info-level progress is only
// emitted in verbose mode.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
