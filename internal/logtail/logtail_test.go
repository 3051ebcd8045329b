package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (3)", 3, expectedAll[7:]},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestConsoleLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "slog record with attrs",
			input:    `time=2025-10-08T21:01:05.123+00:00 level=INFO msg="Searching for" query=logo`,
			expected: "21:01:05 INFO  Searching for query=logo",
		},
		{
			name:     "quoted attr with spaces",
			input:    `time=2025-10-08T21:01:05Z level=WARN msg="Selected category" category="Social media"`,
			expected: `21:01:05 WARN  Selected category category="Social media"`,
		},
		{
			name:     "escaped quotes in message",
			input:    `time=2025-10-08T21:01:05Z level=ERROR msg="save \"prefs\" failed"`,
			expected: `21:01:05 ERROR save "prefs" failed`,
		},
		{
			name:     "plain line passes through",
			input:    "panic: something odd",
			expected: "panic: something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConsoleLine(tt.input); got != tt.expected {
				t.Errorf("ConsoleLine() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConsole_SkipsBlankLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "studio.log")
	data := "time=2025-10-08T21:01:05Z level=INFO msg=Ready\n\n   \ntime=2025-10-08T21:01:06Z level=INFO msg=\"Showing templates\"\n"
	if err := os.WriteFile(logPath, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Console(logPath, 10)
	if err != nil {
		t.Fatalf("Console() error = %v", err)
	}
	want := []string{"21:01:05 INFO  Ready", "21:01:06 INFO  Showing templates"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Console() = %q, want %q", got, want)
	}
}

func TestFormatRecord(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	got := FormatRecord(ts, "debug", "Navigating to", []string{"destination=Home"})
	if got != "03:04:05 DEBUG Navigating to destination=Home" {
		t.Fatalf("FormatRecord() = %q", got)
	}
}
