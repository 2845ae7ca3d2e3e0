package segment

// CollectContext walks outward from a span and gathers the positions of
// up to nBefore expected lines before it and up to nAfter expected lines
// after it. Anomalous lines encountered while walking are skipped over:
// they neither stop the search nor count toward the bounds. Fewer
// positions are returned when a sequence boundary is reached first.
//
// Both returned lists are in ascending order; the backward accumulator
// is reversed before returning.
func CollectContext(lines []string, sp Span, prefix string, nBefore, nAfter int) (before, after []int) {
	for i := sp.Start - 1; i >= 0 && len(before) < nBefore; i-- {
		if IsExpected(lines[i], prefix) {
			before = append(before, i)
		}
	}
	for l, r := 0, len(before)-1; l < r; l, r = l+1, r-1 {
		before[l], before[r] = before[r], before[l]
	}

	for j := sp.End + 1; j < len(lines) && len(after) < nAfter; j++ {
		if IsExpected(lines[j], prefix) {
			after = append(after, j)
		}
	}

	return before, after
}
