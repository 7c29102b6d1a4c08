package model

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestDefaultLogger(t *testing.T) {
	// Setup a buffer to capture log output
	buffer := &bytes.Buffer{}

	logger := &DefaultLogger{
		level:  LogLevelDebug,
		logger: log.New(buffer, "", log.LstdFlags),
	}

	// Test all log levels with DEBUG level set
	logger.Debug("debug message")
	if !strings.Contains(buffer.String(), "[DEBUG] debug message") {
		t.Error("Expected debug message to be logged")
	}
	buffer.Reset()

	logger.Info("info %s", "message")
	if !strings.Contains(buffer.String(), "[INFO] info message") {
		t.Error("Expected info message to be logged")
	}
	buffer.Reset()

	logger.Warn("warn message")
	if !strings.Contains(buffer.String(), "[WARN] warn message") {
		t.Error("Expected warn message to be logged")
	}
	buffer.Reset()

	logger.Error("error message")
	if !strings.Contains(buffer.String(), "[ERROR] error message") {
		t.Error("Expected error message to be logged")
	}
	buffer.Reset()

	// Test log level filtering
	logger.level = LogLevelInfo

	logger.Debug("debug message")
	if buffer.Len() != 0 {
		t.Error("Debug message should not be logged at Info level")
	}

	logger.level = LogLevelError
	logger.Warn("warn message")
	if buffer.Len() != 0 {
		t.Error("Warn message should not be logged at Error level")
	}
}

func TestDefaultLoggerWithWriter(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewDefaultLoggerWithWriter(buffer, LogLevelWarn)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buffer.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info message should not be logged at Warn level")
	}
	if !strings.HasPrefix(out, "peergraph ") || !strings.Contains(out, "[WARN] shown") {
		t.Errorf("Unexpected log output: %q", out)
	}
	if logger.IsLevelEnabled(LogLevelInfo) || !logger.IsLevelEnabled(LogLevelError) {
		t.Error("IsLevelEnabled disagrees with the configured level")
	}
}

func TestNodeLogsMutations(t *testing.T) {
	buffer := &bytes.Buffer{}
	node := NewNodeWithConfig("A", 1, "x", Config{Logger: NewDefaultLoggerWithWriter(buffer, LogLevelDebug)})

	if err := node.AddPeer(NewNode("B", 2, "y")); err != nil {
		t.Fatalf("AddPeer failed: %v", err)
	}
	if !strings.Contains(buffer.String(), "added peer Node(key=B") {
		t.Errorf("Expected peer addition to be logged, got %q", buffer.String())
	}
	buffer.Reset()

	if err := node.AppendToPool(nil); err == nil {
		t.Fatal("Expected AppendToPool(nil) to fail")
	}
	if !strings.Contains(buffer.String(), "[WARN] AppendToPool") {
		t.Errorf("Expected rejected member to be logged, got %q", buffer.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"":        LogLevelInfo,
		"warning": LogLevelWarn,
		" error ": LogLevelError,
	}
	for name, want := range cases {
		got, err := ParseLogLevel(name)
		if err != nil {
			t.Errorf("ParseLogLevel(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Error("Expected unknown level to fail")
	}

	if LogLevelWarn.String() != "warn" || LogLevel(9).String() != "level(9)" {
		t.Error("Unexpected LogLevel names")
	}
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()

	// Just ensure these calls don't panic
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	if logger.IsLevelEnabled(LogLevelError) {
		t.Error("NoOpLogger should report every level as disabled")
	}
}

func TestSetDefaultLogger(t *testing.T) {
	// Save the original default logger
	original := DefaultLoggerInstance
	defer func() {
		DefaultLoggerInstance = original
	}()

	customLogger := NewNoOpLogger()
	SetDefaultLogger(customLogger)

	if GetDefaultLogger() != customLogger {
		t.Error("Expected GetDefaultLogger to return the custom logger")
	}

	if DefaultConfig().Logger != customLogger {
		t.Error("Expected DefaultConfig to pick up the custom logger")
	}
}
