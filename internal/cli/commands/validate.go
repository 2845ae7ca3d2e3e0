package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logexcerpt/pkg/config"
	"logexcerpt/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a logexcerpt configuration file without running extraction.

Checks:
  - YAML syntax
  - Required fields
  - Context bounds
  - Webhook endpoint settings
  - Input file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Date prefix: %q\n", cfg.DatePrefix)
	fmt.Printf("  Context:     %d before / %d after\n", cfg.Context.Before, cfg.Context.After)
	fmt.Printf("  Divider:     %v\n", cfg.Divider)
	fmt.Printf("  Inputs:      %d pattern(s)\n", len(cfg.Inputs))
	if len(cfg.Webhooks) > 0 {
		fmt.Printf("  Webhooks:    %d\n", len(cfg.Webhooks))
	}

	// Check if inputs exist (warnings only)
	if len(cfg.Inputs) == 0 {
		fmt.Printf("\nNote: No inputs configured; pass log files as extract arguments\n")
		return nil
	}

	files, err := parser.ExpandGlobs(cfg.Inputs)
	if err != nil {
		fmt.Printf("\nWarning: Error expanding input patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Printf("\nWarning: No files match input patterns\n")
	} else {
		fmt.Printf("\nLog files matched: %d\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}
