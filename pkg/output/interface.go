package output

import (
	"context"
	"io"
)

// Formatter renders an extraction report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, jsonl).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Divider brackets each text segment with SEGMENT START/END marker
	// lines. When disabled, the union of all segment positions is
	// emitted once, deduplicated, in original order.
	Divider bool

	// Verbose appends run statistics to text output.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool
}
