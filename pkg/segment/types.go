// Package segment implements the core extraction pipeline: it classifies
// log lines against an expected date prefix, coalesces runs of anomalous
// lines into spans, and assembles each span with bounded context and
// derived metadata into an exportable Segment.
package segment

// Span is a closed interval [Start, End] of 0-based line positions
// covering a maximal run of consecutive anomalous lines.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of lines the span covers.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Options configures the extraction pipeline.
type Options struct {
	// Prefix is the expected date prefix. A line is "expected" iff its
	// text starts with this prefix (case-sensitive, no trimming).
	Prefix string

	// ContextBefore is the maximum number of expected lines to collect
	// before each span.
	ContextBefore int

	// ContextAfter is the maximum number of expected lines to collect
	// after each span.
	ContextAfter int
}

// Segment is the unit of output: one anomalous span plus its context and
// derived metadata. Segments are assembled once and never mutated.
//
// Absent string fields are empty and omitted from JSON. An expected line
// always starts with the (non-empty) prefix, so an empty OccurSource or
// OccurTime can only mean "absent".
type Segment struct {
	// Number is the 1-based sequential number in ascending span order.
	Number int `json:"segment"`

	// Span is the anomalous run this segment was built from.
	Span Span `json:"span"`

	// ContextBefore holds the positions of up to ContextBefore expected
	// lines preceding the span, in ascending order.
	ContextBefore []int `json:"context_before"`

	// ContextAfter holds the positions of up to ContextAfter expected
	// lines following the span, in ascending order.
	ContextAfter []int `json:"context_after"`

	// OccurTime is the timestamp captured from the occurrence source
	// line, or empty if the source is absent or did not match.
	OccurTime string `json:"occur_time,omitempty"`

	// OccurSource is the raw text of the nearest expected line used as
	// the timestamp source, or empty if no expected line exists.
	OccurSource string `json:"occur_source,omitempty"`

	// ExceptionFirstLine is the full text of the first anomalous line
	// in the span.
	ExceptionFirstLine string `json:"exception_first_line,omitempty"`

	// ExceptionPrefix is the trimmed text before the first colon of the
	// first anomalous line, or empty if that line has no colon.
	ExceptionPrefix string `json:"exception_prefix,omitempty"`

	// ExceptionLines holds the full text of every anomalous line in the
	// span, in order, trailing newlines stripped.
	ExceptionLines []string `json:"exception_lines"`

	// Positions is the flattened ordered position list
	// ContextBefore ++ [Start..End] ++ ContextAfter, used for plain-text
	// reconstruction. Positions may repeat across segments when context
	// windows of adjacent spans overlap.
	Positions []int `json:"positions"`
}
