package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_ZeroValueDiscards(t *testing.T) {
	var logger Logger

	// Must not panic, and has nowhere to write.
	logger.Info("dropped")
	logger.Error("dropped", slog.String("key", "value"))
}

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.config.level != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.config.level)
	}

	if logger.config.caller {
		t.Error("expected caller disabled by default")
	}

	if logger.config.format != FormatText {
		t.Errorf("expected default format text, got %v", logger.config.format)
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()

	logger2 := Make(&buf, WithLevel(LevelError))
	logger2.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger2.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_TraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))
	logger.Trace("trace message")

	output := buf.String()
	if !strings.Contains(output, "trace message") {
		t.Error("trace message not logged at Trace level")
	}

	if !strings.Contains(output, "TRACE") {
		t.Errorf("expected TRACE level name, got: %s", output)
	}

	buf.Reset()

	Make(&buf, WithLevel(LevelDebug)).Trace("hidden")

	if buf.Len() > 0 {
		t.Error("trace message logged at Debug level")
	}
}

func TestLogger_Make_WithFormat_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON))
	logger.Info("test message", slog.String("key", "value"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if result["msg"] != "test message" {
		t.Errorf("expected msg=test message, got %v", result["msg"])
	}

	if result["key"] != "value" {
		t.Errorf("expected key=value, got %v", result["key"])
	}
}

func TestLogger_With_AttachesAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON)).
		With(slog.String("component", "parser"))
	logger.Info("ready")

	if !strings.Contains(buf.String(), `"component":"parser"`) {
		t.Errorf("expected attached attr in output, got: %s", buf.String())
	}
}

func TestLogger_Wrap_OverridesOptions(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))
	wrapped := logger.Wrap(WithLevel(LevelDebug))

	wrapped.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Error("wrapped logger did not honor new level")
	}

	if logger.Level() != LevelError {
		t.Error("original logger level changed by Wrap")
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true), WithPretty(false)).Info("test message")

	if !strings.Contains(buf.String(), "source") {
		t.Error("caller info not included when enabled")
	}

	buf.Reset()

	Make(&buf, WithCaller(false), WithPretty(false)).Info("test message")

	if strings.Contains(buf.String(), "source") {
		t.Error("caller info included when disabled")
	}
}
