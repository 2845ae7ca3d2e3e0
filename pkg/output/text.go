package output

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// TextFormatter renders segments as plain text, reproducing the source
// lines verbatim.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}

	var err error
	if f.opts.Divider {
		err = f.formatWithDividers(report, w)
	} else {
		err = f.formatFlat(report, w)
	}
	if err != nil {
		return err
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "# %d segment(s), %d/%d anomalous lines, context %d/%d\n",
			report.Summary.Segments,
			report.Summary.AnomalousLines,
			report.Summary.LinesScanned,
			report.Metadata.ContextBefore,
			report.Metadata.ContextAfter)
	}

	return nil
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %d segment(s) in %d lines\n",
		report.Metadata.Source,
		report.Summary.Segments,
		report.Summary.LinesScanned)
	return err
}

// formatWithDividers emits each segment independently, bracketed by
// marker lines. Positions shared between adjacent segments repeat.
func (f *TextFormatter) formatWithDividers(report *Report, w io.Writer) error {
	for _, seg := range report.Segments {
		if _, err := fmt.Fprintf(w, "----- SEGMENT %d START -----\n", seg.Number); err != nil {
			return err
		}
		for _, pos := range seg.Positions {
			if _, err := fmt.Fprintln(w, report.Line(pos)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "----- SEGMENT %d END -----\n", seg.Number); err != nil {
			return err
		}
	}
	return nil
}

// formatFlat emits the union of all segments' positions once, in
// original source order, with no markers.
func (f *TextFormatter) formatFlat(report *Report, w io.Writer) error {
	seen := make(map[int]bool)
	var positions []int
	for _, seg := range report.Segments {
		for _, pos := range seg.Positions {
			if !seen[pos] {
				seen[pos] = true
				positions = append(positions, pos)
			}
		}
	}
	sort.Ints(positions)

	for _, pos := range positions {
		if _, err := fmt.Fprintln(w, report.Line(pos)); err != nil {
			return err
		}
	}
	return nil
}
