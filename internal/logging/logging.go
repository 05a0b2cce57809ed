// Package logging builds the zap logger used by the executables.
// Console output goes to stderr so stdout stays reserved for the payload.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Guliveer/vitalis/snapshot/internal/config"
)

// ParseLevel maps a config level name to a zap level. Unknown names map to info.
func ParseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New creates a logger from the logging configuration.
// It writes human-readable output to stderr and, if configured, JSON to a file.
// The returned func flushes the logger and closes the file; call it before exit.
// A log file that cannot be opened is reported on stderr and skipped.
func New(cfg config.LoggingConfig) (*zap.Logger, func()) {
	level := ParseLevel(cfg.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	var file *os.File
	var openErr error
	if cfg.File != "" {
		file, openErr = os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if openErr == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	logger := zap.New(zapcore.NewTee(cores...))
	if openErr != nil {
		logger.Warn("Log file unavailable, logging to stderr only",
			zap.String("path", cfg.File), zap.Error(openErr))
	}

	return logger, func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
}
