// Package logger wraps zap construction so the server can start with a no-op
// logger and switch to a configured one once the level is known.
package logger

import (
	"go.uber.org/zap"
)

// Logger holds the process-wide structured logger.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger backed by a no-op zap logger until Init is called.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init replaces the no-op logger with a production JSON logger at the given level.
// Level names are the zap ones ("debug", "info", "warn", "error"), case-insensitive.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl
	return nil
}
