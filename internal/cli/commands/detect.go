package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"logexcerpt/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	ShowAll     bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <log-file>",
		Short: "Detect the date prefix of a log file",
		Long: `Analyze a log file to automatically detect its daily date prefix.

Samples lines from the file, tests them against common leading date
shapes, and suggests the dominant concrete prefix (the day most lines
start with) together with a confidence score and a ready-to-use YAML
configuration snippet.

Optionally generates a starter config file with --write-config.

Supports:
  - ISO dates (2025-09-05), bracketed or bare
  - Slash dates with 2- or 4-digit years
  - Compact YYMMDD dates
  - Syslog month-day prefixes

Example:
  logexcerpt detect /var/log/myapp.log
  logexcerpt detect --sample 500 /var/log/large.log
  logexcerpt detect --write-config myapp.yaml /var/log/app.log
  logexcerpt detect -w logexcerpt.yaml /var/log/app.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all detected date shapes, not just the best match")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	logFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		return fmt.Errorf("log file not found: %s", logFile)
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	result, err := d.DetectFromFile(ctx, logFile)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(result, logFile, opts.WriteConfig); err != nil {
			return err
		}
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(result, logFile, opts)
	default:
		return outputDetectText(result, logFile, opts)
	}
}

func outputDetectText(result *detector.DetectionResult, logFile string, opts *DetectOptions) error {
	fmt.Println("=== Date Prefix Detection ===")
	fmt.Println()
	fmt.Printf("File: %s\n", logFile)
	fmt.Printf("Lines sampled: %d\n", result.SampledLines)
	fmt.Printf("Lines with a leading date: %d\n", result.MatchedLines)
	fmt.Println()

	if !result.HasMatch() {
		fmt.Println("No date prefix detected.")
		fmt.Println()
		fmt.Println("Tip: The file may use an uncommon date format.")
		fmt.Println("Check the first few lines manually to identify the prefix.")
		return nil
	}

	best := result.BestMatch()
	fmt.Printf("Detected shape: %s\n", best.Format.Name)
	fmt.Printf("Suggested prefix: %q (%d/%d matching lines carry it)\n",
		best.Prefix, best.PrefixCount, best.MatchCount)
	fmt.Printf("Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Println()
	fmt.Printf("Sample match:\n  %s\n", best.SampleLine)
	fmt.Println()

	fmt.Println("--- Configuration snippet (copy to your config file) ---")
	fmt.Println()
	fmt.Printf("date_prefix: %q\n", best.Prefix)
	fmt.Println()

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Println("--- Alternative date shapes detected ---")
		for i, m := range result.Matches[1:] {
			fmt.Printf("%d. %s (%.1f%% confidence, prefix %q)\n",
				i+2, m.Format.Name, m.Confidence*100, m.Prefix)
		}
		fmt.Println()
	}

	return nil
}

// JSONMatch represents a date shape match in JSON output.
type JSONMatch struct {
	Name        string  `json:"name"`
	Pattern     string  `json:"pattern"`
	Prefix      string  `json:"prefix"`
	PrefixCount int     `json:"prefix_count"`
	Confidence  float64 `json:"confidence"`
	MatchCount  int     `json:"match_count"`
	SampleLine  string  `json:"sample_line"`
}

// JSONOutput represents the full JSON output.
type JSONOutput struct {
	File         string      `json:"file"`
	Matches      []JSONMatch `json:"matches"`
	SampledLines int         `json:"sampled_lines"`
	MatchedLines int         `json:"matched_lines"`
}

func outputDetectJSON(result *detector.DetectionResult, logFile string, opts *DetectOptions) error {
	out := JSONOutput{
		File:         logFile,
		SampledLines: result.SampledLines,
		MatchedLines: result.MatchedLines,
		Matches:      make([]JSONMatch, 0),
	}

	matches := result.Matches
	if !opts.ShowAll && len(matches) > 1 {
		matches = matches[:1] // Only show best match
	}

	for _, m := range matches {
		out.Matches = append(out.Matches, JSONMatch{
			Name:        m.Format.Name,
			Pattern:     m.Format.PatternStr,
			Prefix:      m.Prefix,
			PrefixCount: m.PrefixCount,
			Confidence:  m.Confidence,
			MatchCount:  m.MatchCount,
			SampleLine:  m.SampleLine,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeStarterConfig generates a starter config file with the detected prefix.
func writeStarterConfig(result *detector.DetectionResult, logFile, configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	if !result.HasMatch() {
		return fmt.Errorf("cannot generate config: no date prefix detected")
	}

	best := result.BestMatch()
	cfg := generateStarterConfig(logFile, best)

	// #nosec G306 - config file doesn't need restrictive permissions
	if err := os.WriteFile(configPath, []byte(cfg), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Wrote starter config to: %s\n\n", configPath)
	return nil
}

// generateStarterConfig creates a YAML config template.
func generateStarterConfig(logFile string, match *detector.PrefixMatch) string {
	absLogFile := logFile
	if abs, err := filepath.Abs(logFile); err == nil {
		absLogFile = abs
	}

	return fmt.Sprintf(`# logexcerpt configuration
# Generated by: logexcerpt detect
# Detected shape: %s (%.0f%% confidence)

inputs:
  - %s
  # Add more log files or use globs:
  # - /var/log/myapp/**/*.log

# Lines starting with this prefix are "normal"; everything else is
# extracted as an anomalous segment.
date_prefix: %q

# Expected lines of context to keep around each segment.
context:
  before: 3
  after: 3

# Insert "----- SEGMENT n START/END -----" markers in text output.
divider: true

# Optional: write output to a file instead of stdout.
# output: excerpts.log

# Optional: POST the extraction report as JSON.
# webhooks:
#   - name: ops
#     url: https://example.com/hooks/logexcerpt
#     token: ${LOGEXCERPT_HOOK_TOKEN}
#     trigger: on_segments
`, match.Format.Name, match.Confidence*100,
		absLogFile,
		match.Prefix)
}
