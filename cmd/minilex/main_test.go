package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunDemo_Output(t *testing.T) {
	var sb strings.Builder

	runDemo(&sb, discardLogger())
	out := sb.String()

	fragments := []string{
		"INPUT: inventory = 50",
		"No lexical errors detected",
		"Tokenization Table",
		"Error, )) is not recognized as a token",
		"Error, $ is not recognized as a token",
		"Augmented Assignment Operator",
	}

	for _, fragment := range fragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("Expected demo output to contain %q", fragment)
		}
	}
}

func TestLexSource_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.toy")

	if err := os.WriteFile(path, []byte("count = 3"), 0600); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}

	var sb strings.Builder
	if err := lexSource(&sb, discardLogger(), path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "No lexical errors detected") {
		t.Errorf("Expected no-errors notice, got %q", out)
	}

	if !strings.Contains(out, "count") {
		t.Errorf("Expected table to contain lexeme, got %q", out)
	}
}

func TestLexSource_MissingFile(t *testing.T) {
	var sb strings.Builder

	err := lexSource(&sb, discardLogger(), filepath.Join(t.TempDir(), "absent.toy"))
	if err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestBuildLogger_WithLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minilex.log")

	logger, closeLog, err := buildLogger(true, path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	logger.Debug("probe", "key", "value")
	closeLog()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "probe") {
		t.Errorf("Expected log file to contain the record, got %q", content)
	}
}
