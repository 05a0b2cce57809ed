package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/Guliveer/vitalis/snapshot/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.log")
	logger, closeLog := New(config.LoggingConfig{Level: "info", File: path})
	logger.Info("hello")
	logger.Debug("suppressed")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}
	if got := string(data); !strings.Contains(got, `"msg":"hello"`) || strings.Contains(got, "suppressed") {
		t.Errorf("unexpected log file contents: %s", got)
	}
}

func TestNew_CloseReleasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.log")
	logger, closeLog := New(config.LoggingConfig{Level: "info", File: path})
	logger.Info("before close")
	closeLog()

	// The file core now writes to a closed descriptor; it must not panic.
	logger.Info("after close")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); !strings.Contains(got, "before close") || strings.Contains(got, "after close") {
		t.Errorf("unexpected log file contents: %s", got)
	}
}

func TestNew_UnopenableFileFallsBackToStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "snapshot.log")
	logger, closeLog := New(config.LoggingConfig{Level: "info", File: path})
	defer closeLog()

	if logger == nil {
		t.Fatal("New returned a nil logger")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("console core should remain enabled at the configured level")
	}
	logger.Info("still usable")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file should not exist, stat error = %v", err)
	}
}

func TestNew_NoFileCleanupIsSafe(t *testing.T) {
	logger, closeLog := New(config.LoggingConfig{Level: "warn"})
	logger.Warn("console only")
	closeLog()
	closeLog()
}
