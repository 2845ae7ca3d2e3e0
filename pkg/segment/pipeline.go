package segment

// Extract runs the full segmentation pipeline over an in-memory line
// sequence: classify every line, merge anomalous positions into spans,
// then assemble one Segment per span with bounded context and derived
// metadata. Segments are numbered from 1 in ascending span order.
//
// The pipeline is a pure function of (lines, opts): it never mutates
// lines, never fails on data shape, and returns identical output for
// identical input. Zero anomalous lines produce an empty result.
func Extract(lines []string, opts Options) []Segment {
	var anomalous []int
	for i, line := range lines {
		if !IsExpected(line, opts.Prefix) {
			anomalous = append(anomalous, i)
		}
	}

	spans := MergeSpans(anomalous)
	segments := make([]Segment, 0, len(spans))

	for n, sp := range spans {
		before, after := CollectContext(lines, sp, opts.Prefix, opts.ContextBefore, opts.ContextAfter)

		seg := Segment{
			Number:        n + 1,
			Span:          sp,
			ContextBefore: before,
			ContextAfter:  after,
		}
		applyMetadata(lines, sp, opts.Prefix, &seg)
		seg.Positions = flatten(before, sp, after)

		segments = append(segments, seg)
	}

	return segments
}

// flatten builds the ordered position list used for plain-text
// reconstruction: context before, the span itself, context after.
func flatten(before []int, sp Span, after []int) []int {
	positions := make([]int, 0, len(before)+sp.Len()+len(after))
	positions = append(positions, before...)
	for i := sp.Start; i <= sp.End; i++ {
		positions = append(positions, i)
	}
	return append(positions, after...)
}
