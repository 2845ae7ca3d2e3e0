// Package detector provides automatic date-prefix detection for log files.
package detector

import (
	"bufio"
	"context"
	"os"
	"sort"
	"strings"
)

// DetectionResult holds the result of analyzing a log file.
type DetectionResult struct {
	Matches      []PrefixMatch // Formats that matched, sorted by confidence descending
	SampledLines int           // Number of lines sampled
	MatchedLines int           // Number of lines matching the best format
}

// PrefixMatch represents a date shape that matched with its suggested prefix.
type PrefixMatch struct {
	Format      *PrefixFormat
	Prefix      string  // Most frequent concrete prefix captured
	PrefixCount int     // Lines starting with exactly that prefix
	MatchCount  int     // Lines matching the format at all
	Confidence  float64 // 0.0 to 1.0 (fraction of sampled lines matching the format)
	SampleLine  string  // Example line that matched
}

// Detector analyzes log files to identify the dominant daily date prefix.
type Detector struct {
	formats    []*PrefixFormat
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a new Detector with default formats.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    DefaultFormats(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile analyzes a log file and returns detected prefixes.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines analyzes a slice of log lines.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{
		SampledLines: len(lines),
	}

	if len(lines) == 0 {
		return result
	}

	type formatStats struct {
		format     *PrefixFormat
		matchCount int
		sampleLine string
		byPrefix   map[string]int
	}

	stats := make(map[string]*formatStats)

	for _, line := range lines {
		for _, format := range d.formats {
			m := format.Pattern.FindStringSubmatch(line)
			if len(m) < 2 {
				continue
			}

			key := format.Name
			if stats[key] == nil {
				stats[key] = &formatStats{
					format:     format,
					sampleLine: line,
					byPrefix:   make(map[string]int),
				}
			}
			stats[key].matchCount++
			stats[key].byPrefix[m[1]]++
		}
	}

	for _, s := range stats {
		prefix, count := dominantPrefix(s.byPrefix)
		result.Matches = append(result.Matches, PrefixMatch{
			Format:      s.format,
			Prefix:      prefix,
			PrefixCount: count,
			MatchCount:  s.matchCount,
			Confidence:  float64(s.matchCount) / float64(len(lines)),
			SampleLine:  s.sampleLine,
		})
	}

	// Sort by confidence descending, then by pattern length (more specific first)
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return len(result.Matches[i].Format.PatternStr) > len(result.Matches[j].Format.PatternStr)
	})

	if len(result.Matches) > 0 {
		result.MatchedLines = result.Matches[0].MatchCount
	}

	return result
}

// dominantPrefix picks the most frequent captured prefix. Ties resolve
// to the lexicographically greatest value, which for date prefixes is
// the most recent day.
func dominantPrefix(byPrefix map[string]int) (string, int) {
	var best string
	bestCount := 0
	for prefix, count := range byPrefix {
		if count > bestCount || (count == bestCount && prefix > best) {
			best, bestCount = prefix, count
		}
	}
	return best, bestCount
}

// sampleFile reads up to sampleSize lines from a file.
// Uses simple head sampling for efficiency.
func (d *Detector) sampleFile(_ context.Context, path string) ([]string, error) {
	// #nosec G304 - path is provided by user via CLI
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() && len(lines) < d.sampleSize {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *DetectionResult) BestMatch() *PrefixMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one date shape matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}
