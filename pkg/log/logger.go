// Package log provides the shared CLI logger. Diagnostics go to stderr so
// the generated template on stdout stays machine-readable.
package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	level  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger *zap.SugaredLogger
)

// Logger returns a lazily initialised structured logger.
func Logger() *zap.SugaredLogger {
	once.Do(func() {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = level
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}

		base, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		logger = base.Sugar()
	})

	return logger
}

// SetVerbose lowers the level to debug for --verbose runs.
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.WarnLevel)
}

// Sync flushes any buffered log entries.
func Sync() error {
	if logger == nil {
		return nil
	}
	return logger.Sync()
}
