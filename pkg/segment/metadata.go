package segment

import (
	"regexp"
	"strings"
)

// timestampPattern matches a leading "YYYY-MM-DD HH:MM:SS" stamp. The
// captured text is used verbatim as the occurrence timestamp.
var timestampPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2})`)

// ExtractTimestamp attempts to match a date-time stamp anchored at the
// start of line. On match it returns the captured substring and true.
func ExtractTimestamp(line string) (string, bool) {
	m := timestampPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// occurrenceSource returns the position of the expected line nearest to
// the span: searching backward from the span start first, then forward
// from the span end. The backward-first preference is a fixed tie-break.
// Both searches are unbounded. Returns ok=false when the file contains
// no expected line in either direction.
func occurrenceSource(lines []string, sp Span, prefix string) (int, bool) {
	for i := sp.Start - 1; i >= 0; i-- {
		if IsExpected(lines[i], prefix) {
			return i, true
		}
	}
	for j := sp.End + 1; j < len(lines); j++ {
		if IsExpected(lines[j], prefix) {
			return j, true
		}
	}
	return 0, false
}

// applyMetadata derives the occurrence and exception fields of seg from
// the span contents. Extraction is best-effort: any absence (no expected
// line nearby, no timestamp match, no colon) leaves the field empty and
// never fails.
func applyMetadata(lines []string, sp Span, prefix string, seg *Segment) {
	if src, ok := occurrenceSource(lines, sp, prefix); ok {
		seg.OccurSource = lines[src]
		if ts, ok := ExtractTimestamp(lines[src]); ok {
			seg.OccurTime = ts
		}
	}

	// The whole span is anomalous by construction, so the first line in
	// range should qualify; the scan guards against a mismatched prefix.
	for i := sp.Start; i <= sp.End; i++ {
		if IsExpected(lines[i], prefix) {
			continue
		}
		text := strings.TrimSuffix(lines[i], "\n")
		seg.ExceptionFirstLine = text
		if c := strings.Index(text, ":"); c >= 0 {
			seg.ExceptionPrefix = strings.TrimSpace(text[:c])
		}
		break
	}

	seg.ExceptionLines = make([]string, 0, sp.Len())
	for i := sp.Start; i <= sp.End; i++ {
		if !IsExpected(lines[i], prefix) {
			seg.ExceptionLines = append(seg.ExceptionLines, strings.TrimSuffix(lines[i], "\n"))
		}
	}
}
