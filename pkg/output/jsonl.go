package output

import (
	"context"
	"encoding/json"
	"io"

	"logexcerpt/pkg/segment"
)

// JSONLFormatter renders the report as JSON Lines: one JSON object per
// segment, each on its own line.
type JSONLFormatter struct {
	opts FormatOptions
}

// NewJSONLFormatter creates a new JSON Lines formatter with the given options.
func NewJSONLFormatter(opts FormatOptions) *JSONLFormatter {
	return &JSONLFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONLFormatter) Name() string {
	return "jsonl"
}

// segmentRecord is one output line: a segment tagged with its source file.
type segmentRecord struct {
	Source string `json:"source"`
	segment.Segment
}

// summaryRecord is the quiet-mode output line.
type summaryRecord struct {
	Source string `json:"source"`
	Summary
}

// Format renders the report as JSON Lines.
func (f *JSONLFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)

	if f.opts.Quiet {
		return encoder.Encode(summaryRecord{
			Source:  report.Metadata.Source,
			Summary: report.Summary,
		})
	}

	for _, seg := range report.Segments {
		rec := segmentRecord{
			Source:  report.Metadata.Source,
			Segment: seg,
		}
		if err := encoder.Encode(rec); err != nil {
			return err
		}
	}

	return nil
}
