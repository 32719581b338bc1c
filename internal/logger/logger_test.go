package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSlogLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewSlogLogger(Config{Level: LevelDebug, Format: FormatText, Writer: &buf})
	if err != nil {
		t.Fatalf("NewSlogLogger failed: %v", err)
	}

	log.Info("scan complete", "files", 42)

	out := buf.String()
	if !strings.Contains(out, "scan complete") || !strings.Contains(out, "files=42") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewSlogLogger(Config{Level: LevelWarn, Format: FormatText, Writer: &buf})
	if err != nil {
		t.Fatalf("NewSlogLogger failed: %v", err)
	}

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level must not appear: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestSlogLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewSlogLogger(Config{Level: LevelInfo, Format: FormatJSON, Writer: &buf})
	if err != nil {
		t.Fatalf("NewSlogLogger failed: %v", err)
	}

	log.Info("hello")

	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected JSON output, got: %s", buf.String())
	}
}

func TestWith_BindsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewSlogLogger(Config{Level: LevelInfo, Format: FormatText, Writer: &buf})
	if err != nil {
		t.Fatalf("NewSlogLogger failed: %v", err)
	}

	child := log.With("component", "scanner")
	child.Info("walking")

	if !strings.Contains(buf.String(), "component=scanner") {
		t.Errorf("bound attribute missing: %s", buf.String())
	}
}

func TestGet_UninitializedReturnsNull(t *testing.T) {
	log := Get()
	if _, ok := log.(*NullLogger); !ok {
		t.Errorf("expected NullLogger before Init, got %T", log)
	}
	// Must not panic
	log.Info("into the void")
}
