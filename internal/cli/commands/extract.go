package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"logexcerpt/pkg/config"
	"logexcerpt/pkg/output"
	"logexcerpt/pkg/parser"
	"logexcerpt/pkg/segment"
	"logexcerpt/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ExtractOptions holds command-line options for the extract command.
type ExtractOptions struct {
	Config  string
	Prefix  string
	Before  int
	After   int
	Format  string
	Out     string
	Divider bool
	Verbose bool
	Quiet   bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [log-file...]",
		Short: "Extract anomalous excerpts from log files",
		Long: `Scan log files for runs of lines that do NOT start with the expected
daily date prefix and extract them together with up to N surrounding
date-prefixed lines of context.

Input files may be given as arguments or in the config file; glob
patterns (including **) are supported. Each file is scanned
independently.

Exit codes:
  0 - No anomalous segments found
  1 - Anomalous segments extracted
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", "", "Expected date prefix (e.g. 2025-09-05)")
	cmd.Flags().IntVar(&opts.Before, "before", config.DefaultContextBefore, "Expected lines of context before each segment")
	cmd.Flags().IntVar(&opts.After, "after", config.DefaultContextAfter, "Expected lines of context after each segment")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format (text|jsonl)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVar(&opts.Divider, "divider", true, "Insert SEGMENT START/END markers in text output")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log per-file progress to stderr")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no segment output")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_segments", "When to fire webhook (on_segments|always|never)")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, opts *ExtractOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := newLogger(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := resolveConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	// Inputs from arguments take precedence over the config file.
	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Inputs
	}
	if len(patterns) == 0 {
		return fmt.Errorf("no input files: pass log files as arguments or set inputs in the config")
	}

	files, err := parser.ExpandGlobs(patterns)
	if err != nil {
		return fmt.Errorf("expanding inputs: %w", err)
	}

	w, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	formatter, err := createFormatter(opts.Format, output.FormatOptions{
		Divider: cfg.Divider,
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	extractOpts := segment.Options{
		Prefix:        cfg.DatePrefix,
		ContextBefore: cfg.Context.Before,
		ContextAfter:  cfg.Context.After,
	}

	client := webhook.NewClient()
	totalSegments := 0

	for _, file := range files {
		start := time.Now()

		lines, err := parser.ReadLines(file)
		if err != nil {
			return err
		}

		segments := segment.Extract(lines, extractOpts)
		report := output.NewReport(file, lines, segments, extractOpts)
		report.Metadata.Duration = time.Since(start)
		totalSegments += len(segments)

		logger.Info("scanned file",
			zap.String("file", file),
			zap.Int("lines", report.Summary.LinesScanned),
			zap.Int("anomalous_lines", report.Summary.AnomalousLines),
			zap.Int("segments", report.Summary.Segments),
			zap.Duration("duration", report.Metadata.Duration))

		if len(files) > 1 && formatter.Name() == "text" && !opts.Quiet {
			fmt.Fprintf(w, "== %s ==\n", file)
		}

		if err := formatter.Format(ctx, report, w); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}

		// Send webhooks (errors logged but don't fail extraction)
		sendWebhooks(ctx, client, logger, cfg, opts, report)
	}

	// Display summary; not part of the data output.
	fmt.Fprintf(os.Stderr, "extracted %d segment(s) from %d file(s), context %d/%d\n",
		totalSegments, len(files), cfg.Context.Before, cfg.Context.After)

	if totalSegments > 0 {
		ExitCode = 1
	}

	return nil
}

// resolveConfig loads the config file when given and applies flag
// overrides. Flags that were explicitly set always win.
func resolveConfig(ctx context.Context, cmd *cobra.Command, opts *ExtractOptions) (*config.Config, error) {
	var cfg *config.Config

	if opts.Config != "" {
		loaded, err := config.Load(ctx, opts.Config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("prefix") || cfg.DatePrefix == "" {
		cfg.DatePrefix = opts.Prefix
	}
	if flags.Changed("before") {
		cfg.Context.Before = opts.Before
	}
	if flags.Changed("after") {
		cfg.Context.After = opts.After
	}
	if flags.Changed("divider") {
		cfg.Divider = opts.Divider
	}
	if flags.Changed("out") {
		cfg.Output = opts.Out
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openOutput opens the output destination. An empty path means stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func createFormatter(format string, formatOpts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "jsonl":
		return output.NewJSONLFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or jsonl)", format)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged but don't fail the extraction.
func sendWebhooks(ctx context.Context, client *webhook.Client, logger *zap.Logger, cfg *config.Config, opts *ExtractOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasSegments()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			logger.Info("webhook sent",
				zap.String("webhook", name),
				zap.Int("status", resp.StatusCode),
				zap.Duration("duration", resp.Duration))
		} else {
			logger.Warn("webhook failed",
				zap.String("webhook", name),
				zap.Error(resp.Error))
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *ExtractOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnSegments
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire based on trigger and findings.
func shouldFireWebhook(trigger config.WebhookTrigger, hasSegments bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	case config.WebhookTriggerOnSegments:
		return hasSegments
	default:
		// Default to on_segments
		return hasSegments
	}
}
