package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func TestNewLoggerLevels(t *testing.T) {
	quiet := NewLogger(false)
	if quiet.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("non-verbose logger should not log debug")
	}
	if !quiet.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("non-verbose logger should log info")
	}

	if !NewLogger(true).Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should log debug")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("expected a usable logger")
	}
	OrNop(nil).Infow("discarded", "key", "value")

	log := zaptest.NewLogger(t).Sugar()
	if OrNop(log) != log {
		t.Error("expected the given logger back")
	}
}
