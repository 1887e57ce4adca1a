package utils_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/richtree/internal/utils"
)

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "negative", bytes: -1, expected: "0.0 B"},
		{name: "zero", bytes: 0, expected: "0.0 B"},
		{name: "bytes", bytes: 512, expected: "512.0 B"},
		{name: "just below kilobyte", bytes: 1023, expected: "1023.0 B"},
		{name: "one kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "ten megabytes", bytes: 10 * 1024 * 1024, expected: "10.0 MB"},
		{name: "one gigabyte", bytes: 1 << 30, expected: "1.0 GB"},
		{name: "one terabyte", bytes: 1 << 40, expected: "1.0 TB"},
		{name: "one petabyte", bytes: 1 << 50, expected: "1.0 PB"},
		{name: "beyond petabyte", bytes: 2048 << 40, expected: "2.0 PB"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.FormatSize(testCase.bytes)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestIsHiddenName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "git directory", input: ".git", expected: true},
		{name: "dotfile", input: ".env", expected: true},
		{name: "readme", input: "README.md", expected: false},
		{name: "inner dot", input: "archive.tar.gz", expected: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if utils.IsHiddenName(testCase.input) != testCase.expected {
				t.Fatalf("IsHiddenName(%q) expected %t", testCase.input, testCase.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if name := utils.DisplayName("/tmp/project"); name != "project" {
		t.Fatalf("expected project, got %s", name)
	}
	if name := utils.DisplayName("/"); name != "/" {
		t.Fatalf("expected filesystem root to be displayed as itself, got %s", name)
	}
}

func TestNewApplicationLoggerHonorsSharedLevel(t *testing.T) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger, err := utils.NewApplicationLogger(level)
	if err != nil {
		t.Fatalf("NewApplicationLogger error: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug to be disabled at info level")
	}
	level.SetLevel(zapcore.DebugLevel)
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug to be enabled after raising the shared level")
	}
}
