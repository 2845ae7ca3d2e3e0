package segment

import "sort"

// MergeSpans coalesces a set of line positions into maximal closed
// intervals of strictly consecutive positions. The input may arrive in
// any order; it is sorted here. Adjacency means exactly +1; positions
// two apart start a new span.
//
// The returned spans are disjoint, non-adjacent, and sorted ascending.
// An empty input produces an empty result.
func MergeSpans(positions []int) []Span {
	if len(positions) == 0 {
		return nil
	}

	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Ints(sorted)

	var spans []Span
	start, end := sorted[0], sorted[0]

	for _, p := range sorted[1:] {
		switch {
		case p == end+1:
			end = p
		case p == end:
			// Duplicate position, input should be a set.
		default:
			spans = append(spans, Span{Start: start, End: end})
			start, end = p, p
		}
	}

	return append(spans, Span{Start: start, End: end})
}
