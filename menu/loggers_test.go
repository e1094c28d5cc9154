package menu

import (
	"bytes"
	"strings"
	"testing"
)

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
	logger.Debug("debug", "k", "v")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error", "odd")
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, "menu-test")

	logger.Info("routing action", "handler", "edit_user", "items", 3)

	out := buf.String()
	if !strings.Contains(out, "routing action") {
		t.Errorf("Expected the message in the output, got %q", out)
	}
	if !strings.Contains(out, "edit_user") {
		t.Errorf("Expected the handler field in the output, got %q", out)
	}
	if !strings.Contains(out, "menu-test") {
		t.Errorf("Expected the app name in the output, got %q", out)
	}
}

func TestZerologLoggerOddArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, "menu-test")

	logger.Warn("something odd", "dangling")

	out := buf.String()
	if !strings.Contains(out, "dangling") {
		t.Errorf("Expected the dangling value in the output, got %q", out)
	}
}
