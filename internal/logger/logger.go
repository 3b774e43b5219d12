// Package logger wraps zap construction behind a small holder type so main
// can defer initialization until the log level is known.
package logger

import "go.uber.org/zap"

// Logger holds the shared zap instance.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger with a no-op zap instance; call Init to activate it.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init replaces the instance with a production logger at the given level
// ("debug", "info", "warn", "error").
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
