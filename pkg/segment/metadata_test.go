package segment

import (
	"reflect"
	"testing"
)

func TestExtractTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{
			name:   "standard stamp",
			line:   "2025-09-05 04:00:01 worker started",
			want:   "2025-09-05 04:00:01",
			wantOK: true,
		},
		{
			name:   "multiple spaces between date and time",
			line:   "2025-09-05  04:00:01 worker started",
			want:   "2025-09-05  04:00:01",
			wantOK: true,
		},
		{
			name:   "tab separator",
			line:   "2025-09-05\t04:00:01 worker started",
			want:   "2025-09-05\t04:00:01",
			wantOK: true,
		},
		{
			name:   "stamp not at start of line",
			line:   "at 2025-09-05 04:00:01 worker started",
			wantOK: false,
		},
		{
			name:   "date only",
			line:   "2025-09-05 worker started",
			wantOK: false,
		},
		{
			name:   "no stamp",
			line:   "ERROR boom",
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTimestamp(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ExtractTimestamp(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractTimestamp(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestOccurrenceSource_PrefersBackward(t *testing.T) {
	lines := []string{
		dateLine("a"), // 0
		"boom",        // 1
		dateLine("b"), // 2
	}

	src, ok := occurrenceSource(lines, Span{1, 1}, testPrefix)
	if !ok {
		t.Fatal("occurrenceSource() ok = false, want true")
	}
	if src != 0 {
		t.Errorf("occurrenceSource() = %d, want 0 (previous line preferred)", src)
	}
}

func TestOccurrenceSource_FallsForward(t *testing.T) {
	lines := []string{
		"boom",        // 0
		"boom",        // 1
		"stray",       // 2
		dateLine("a"), // 3
	}

	src, ok := occurrenceSource(lines, Span{0, 2}, testPrefix)
	if !ok {
		t.Fatal("occurrenceSource() ok = false, want true")
	}
	if src != 3 {
		t.Errorf("occurrenceSource() = %d, want 3", src)
	}
}

func TestOccurrenceSource_SearchIsUnbounded(t *testing.T) {
	// The nearest expected line is far from the span; the search must not
	// be limited by any context bound.
	lines := make([]string, 0, 12)
	lines = append(lines, dateLine("a"))
	for i := 0; i < 10; i++ {
		lines = append(lines, "stray")
	}
	lines = append(lines, "boom")

	src, ok := occurrenceSource(lines, Span{11, 11}, testPrefix)
	if !ok || src != 0 {
		t.Errorf("occurrenceSource() = %d, %v, want 0, true", src, ok)
	}
}

func TestOccurrenceSource_NoneFound(t *testing.T) {
	lines := []string{"boom", "stray"}

	if _, ok := occurrenceSource(lines, Span{0, 1}, testPrefix); ok {
		t.Error("occurrenceSource() ok = true, want false for fully anomalous file")
	}
}

func TestApplyMetadata(t *testing.T) {
	lines := []string{
		dateLine("ok"),                 // 0
		"java.io.IOException: timeout", // 1
		"\tat worker.run(Worker.java)", // 2
		dateLine("recovered"),          // 3
	}

	var seg Segment
	applyMetadata(lines, Span{1, 2}, testPrefix, &seg)

	if want := "2025-09-05 04:00:01"; seg.OccurTime != want {
		t.Errorf("OccurTime = %q, want %q", seg.OccurTime, want)
	}
	if want := dateLine("ok"); seg.OccurSource != want {
		t.Errorf("OccurSource = %q, want %q", seg.OccurSource, want)
	}
	if want := "java.io.IOException: timeout"; seg.ExceptionFirstLine != want {
		t.Errorf("ExceptionFirstLine = %q, want %q", seg.ExceptionFirstLine, want)
	}
	if want := "java.io.IOException"; seg.ExceptionPrefix != want {
		t.Errorf("ExceptionPrefix = %q, want %q", seg.ExceptionPrefix, want)
	}
	wantLines := []string{"java.io.IOException: timeout", "\tat worker.run(Worker.java)"}
	if !reflect.DeepEqual(seg.ExceptionLines, wantLines) {
		t.Errorf("ExceptionLines = %v, want %v", seg.ExceptionLines, wantLines)
	}
}

func TestApplyMetadata_NoColon(t *testing.T) {
	lines := []string{dateLine("ok"), "ERROR boom"}

	var seg Segment
	applyMetadata(lines, Span{1, 1}, testPrefix, &seg)

	if seg.ExceptionFirstLine != "ERROR boom" {
		t.Errorf("ExceptionFirstLine = %q, want %q", seg.ExceptionFirstLine, "ERROR boom")
	}
	if seg.ExceptionPrefix != "" {
		t.Errorf("ExceptionPrefix = %q, want empty for line without colon", seg.ExceptionPrefix)
	}
}

func TestApplyMetadata_SourceWithoutTimestamp(t *testing.T) {
	// The nearest expected line starts with the prefix but carries no
	// full timestamp; the timestamp stays absent, the source is kept.
	lines := []string{"2025-09-05 rotated", "boom"}

	var seg Segment
	applyMetadata(lines, Span{1, 1}, testPrefix, &seg)

	if seg.OccurSource != "2025-09-05 rotated" {
		t.Errorf("OccurSource = %q, want the expected line", seg.OccurSource)
	}
	if seg.OccurTime != "" {
		t.Errorf("OccurTime = %q, want empty on pattern mismatch", seg.OccurTime)
	}
}

func TestApplyMetadata_FullyAnomalousFile(t *testing.T) {
	lines := []string{"boom: one", "boom: two"}

	var seg Segment
	applyMetadata(lines, Span{0, 1}, testPrefix, &seg)

	if seg.OccurSource != "" || seg.OccurTime != "" {
		t.Errorf("occurrence fields = (%q, %q), want absent", seg.OccurSource, seg.OccurTime)
	}
	if seg.ExceptionFirstLine != "boom: one" {
		t.Errorf("ExceptionFirstLine = %q, want %q", seg.ExceptionFirstLine, "boom: one")
	}
	if seg.ExceptionPrefix != "boom" {
		t.Errorf("ExceptionPrefix = %q, want %q", seg.ExceptionPrefix, "boom")
	}
}

func TestApplyMetadata_StripsTrailingNewline(t *testing.T) {
	lines := []string{dateLine("ok"), "ERROR boom\n"}

	var seg Segment
	applyMetadata(lines, Span{1, 1}, testPrefix, &seg)

	if seg.ExceptionFirstLine != "ERROR boom" {
		t.Errorf("ExceptionFirstLine = %q, want trailing newline stripped", seg.ExceptionFirstLine)
	}
	if !reflect.DeepEqual(seg.ExceptionLines, []string{"ERROR boom"}) {
		t.Errorf("ExceptionLines = %v, want trailing newline stripped", seg.ExceptionLines)
	}
}
