// Package logger wraps zap construction so the rest of the code deals with
// a single *zap.Logger.
package logger

import (
	"go.uber.org/zap"
)

// Logger holds the shared zap logger instance.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger with a no-op zap instance; call Init to replace it
// with a real one.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production zap logger at the given level ("debug", "info",
// "warn", "error") and installs it on l. Returns an error for an unknown
// level or a build failure.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = log
	return nil
}
