package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"logexcerpt/pkg/detector"
)

func TestNewDetectCommand(t *testing.T) {
	cmd := NewDetectCommand()

	if cmd.Use != "detect <log-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	flags := []string{"output", "sample", "all", "write-config"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestGenerateStarterConfig(t *testing.T) {
	format := &detector.PrefixFormat{
		Name:       "ISO date",
		PatternStr: `^(\d{4}-\d{2}-\d{2})`,
	}
	match := &detector.PrefixMatch{
		Format:     format,
		Prefix:     "2025-09-05",
		Confidence: 0.95,
	}

	cfg := generateStarterConfig("/var/log/test.log", match)

	checks := []string{
		"inputs:",
		"/var/log/test.log",
		`date_prefix: "2025-09-05"`,
		"context:",
		"before: 3",
		"after: 3",
		"divider: true",
		"ISO date",
		"95%",
	}

	for _, check := range checks {
		if !strings.Contains(cfg, check) {
			t.Errorf("Config missing %q", check)
		}
	}
}

func TestWriteStarterConfig_Success(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "starter.yaml")

	format := &detector.PrefixFormat{
		Name:       "ISO date",
		PatternStr: `^(\d{4}-\d{2}-\d{2})`,
	}
	result := &detector.DetectionResult{
		Matches: []detector.PrefixMatch{
			{Format: format, Prefix: "2025-09-05", Confidence: 1.0},
		},
	}

	if err := writeStarterConfig(result, "/var/log/app.log", configPath); err != nil {
		t.Fatalf("writeStarterConfig() error = %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading starter config: %v", err)
	}
	if !strings.Contains(string(data), `date_prefix: "2025-09-05"`) {
		t.Errorf("starter config missing date_prefix:\n%s", data)
	}
}

func TestWriteStarterConfig_WillNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "existing.yaml", "date_prefix: old\n")

	result := &detector.DetectionResult{
		Matches: []detector.PrefixMatch{
			{Format: &detector.PrefixFormat{Name: "ISO date"}, Prefix: "2025-09-05"},
		},
	}

	if err := writeStarterConfig(result, "/var/log/app.log", configPath); err == nil {
		t.Error("writeStarterConfig() overwrote existing file, want error")
	}
}

func TestWriteStarterConfig_NoMatch(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "starter.yaml")

	if err := writeStarterConfig(&detector.DetectionResult{}, "/var/log/app.log", configPath); err == nil {
		t.Error("writeStarterConfig() succeeded without a detected prefix, want error")
	}
}

func TestRunDetect_MissingFile(t *testing.T) {
	cmd := NewDetectCommand()
	cmd.SetArgs([]string{"/nonexistent/app.log"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("detect succeeded with missing file, want error")
	}
}
