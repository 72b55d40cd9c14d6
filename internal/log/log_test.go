// ABOUTME: Tests for the leveled logging package
// ABOUTME: Validates level filtering and output redirection

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDefaultLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(slog.LevelInfo)
	if GetLevel() != slog.LevelInfo {
		t.Errorf("expected LevelInfo, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelInfo)
	Debug("should be suppressed: %s", "x")

	if buf.Len() != 0 {
		t.Errorf("expected no output at Info level, got %q", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelDebug)
	Debug("should emit: %d", 7)

	got := buf.String()
	if !strings.HasPrefix(got, "[DEBUG] ") {
		t.Errorf("expected [DEBUG] prefix, got %q", got)
	}
	if !strings.Contains(got, "should emit: 7") {
		t.Errorf("expected formatted message, got %q", got)
	}
}

func TestAllLevelsWriteToOutput(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelDebug)
	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	got := buf.String()
	for _, want := range []string{"[DEBUG] debug: 1", "[INFO] info: 2", "[WARN] warn: 3", "[ERROR] error: 4"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %q", want, got)
		}
	}
}
