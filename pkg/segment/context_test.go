package segment

import (
	"reflect"
	"testing"
)

const testPrefix = "2025-09-05"

func dateLine(msg string) string {
	return "2025-09-05 04:00:01 " + msg
}

func TestCollectContext(t *testing.T) {
	lines := []string{
		dateLine("a"), // 0
		dateLine("b"), // 1
		dateLine("c"), // 2
		"boom",        // 3
		"boom",        // 4
		dateLine("d"), // 5
		dateLine("e"), // 6
		dateLine("f"), // 7
	}

	tests := []struct {
		name       string
		sp         Span
		nBefore    int
		nAfter     int
		wantBefore []int
		wantAfter  []int
	}{
		{
			name:       "full context available",
			sp:         Span{3, 4},
			nBefore:    2,
			nAfter:     2,
			wantBefore: []int{1, 2},
			wantAfter:  []int{5, 6},
		},
		{
			name:       "bounds larger than available",
			sp:         Span{3, 4},
			nBefore:    10,
			nAfter:     10,
			wantBefore: []int{0, 1, 2},
			wantAfter:  []int{5, 6, 7},
		},
		{
			name:       "zero bounds collect nothing",
			sp:         Span{3, 4},
			nBefore:    0,
			nAfter:     0,
			wantBefore: nil,
			wantAfter:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after := CollectContext(lines, tt.sp, testPrefix, tt.nBefore, tt.nAfter)
			if !reflect.DeepEqual(before, tt.wantBefore) {
				t.Errorf("before = %v, want %v", before, tt.wantBefore)
			}
			if !reflect.DeepEqual(after, tt.wantAfter) {
				t.Errorf("after = %v, want %v", after, tt.wantAfter)
			}
		})
	}
}

func TestCollectContext_SkipsAnomalousLines(t *testing.T) {
	// Anomalous lines outside the span must be stepped over without
	// counting toward the bound or stopping the walk.
	lines := []string{
		dateLine("a"), // 0
		"stray",       // 1
		dateLine("b"), // 2
		"boom",        // 3  <- span
		"stray",       // 4
		dateLine("c"), // 5
		"stray",       // 6
		dateLine("d"), // 7
	}

	before, after := CollectContext(lines, Span{3, 3}, testPrefix, 2, 2)

	if want := []int{0, 2}; !reflect.DeepEqual(before, want) {
		t.Errorf("before = %v, want %v", before, want)
	}
	if want := []int{5, 7}; !reflect.DeepEqual(after, want) {
		t.Errorf("after = %v, want %v", after, want)
	}
}

func TestCollectContext_AtBoundaries(t *testing.T) {
	lines := []string{
		"boom",        // 0
		dateLine("a"), // 1
		"boom",        // 2
	}

	before, after := CollectContext(lines, Span{0, 0}, testPrefix, 3, 3)
	if len(before) != 0 {
		t.Errorf("before = %v, want empty at file start", before)
	}
	if want := []int{1}; !reflect.DeepEqual(after, want) {
		t.Errorf("after = %v, want %v", after, want)
	}

	before, after = CollectContext(lines, Span{2, 2}, testPrefix, 3, 3)
	if want := []int{1}; !reflect.DeepEqual(before, want) {
		t.Errorf("before = %v, want %v", before, want)
	}
	if len(after) != 0 {
		t.Errorf("after = %v, want empty at file end", after)
	}
}

func TestCollectContext_OnlyExpectedLinesCollected(t *testing.T) {
	lines := []string{
		"x", dateLine("a"), "y", "boom", "z", dateLine("b"), "w",
	}

	before, after := CollectContext(lines, Span{3, 3}, testPrefix, 5, 5)

	for _, p := range append(append([]int{}, before...), after...) {
		if !IsExpected(lines[p], testPrefix) {
			t.Errorf("position %d (%q) is not an expected line", p, lines[p])
		}
	}
}
