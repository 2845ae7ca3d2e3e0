// Package output provides formatting and output generation for extraction results.
package output

import (
	"time"

	"logexcerpt/pkg/segment"
)

// Report is the complete extraction output for one source file.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Segments are the extracted anomalous runs in ascending span order.
	Segments []segment.Segment `json:"segments"`

	// Metadata provides context about the extraction run.
	Metadata Metadata `json:"metadata"`

	// lines is the source line sequence, kept for verbatim text
	// reconstruction. Not part of the serialized report.
	lines []string
}

// Summary provides aggregate statistics.
type Summary struct {
	// Segments is the number of anomalous segments extracted.
	Segments int `json:"segments"`

	// LinesScanned is the total number of lines in the source.
	LinesScanned int `json:"lines_scanned"`

	// AnomalousLines is the total number of lines failing classification.
	AnomalousLines int `json:"anomalous_lines"`
}

// Metadata provides context about the extraction run.
type Metadata struct {
	// Source is the log file the segments came from.
	Source string `json:"source"`

	// DatePrefix is the expected prefix lines were classified against.
	DatePrefix string `json:"date_prefix"`

	// ContextBefore and ContextAfter are the effective context bounds.
	ContextBefore int `json:"context_before"`
	ContextAfter  int `json:"context_after"`

	// ExtractedAt is when the extraction was performed.
	ExtractedAt time.Time `json:"extracted_at"`

	// Duration is how long the extraction took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report for one source file from pipeline output.
func NewReport(source string, lines []string, segments []segment.Segment, opts segment.Options) *Report {
	anomalous := 0
	for _, seg := range segments {
		anomalous += seg.Span.Len()
	}

	return &Report{
		Segments: segments,
		Summary: Summary{
			Segments:       len(segments),
			LinesScanned:   len(lines),
			AnomalousLines: anomalous,
		},
		Metadata: Metadata{
			Source:        source,
			DatePrefix:    opts.Prefix,
			ContextBefore: opts.ContextBefore,
			ContextAfter:  opts.ContextAfter,
			ExtractedAt:   time.Now(),
		},
		lines: lines,
	}
}

// HasSegments returns true if any anomalous segments were extracted.
func (r *Report) HasSegments() bool {
	return r.Summary.Segments > 0
}

// Line returns the source line at the given position.
func (r *Report) Line(pos int) string {
	return r.lines[pos]
}
