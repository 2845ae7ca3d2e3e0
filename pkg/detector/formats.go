package detector

import "regexp"

// PrefixFormat represents a known leading date shape for detection.
// The capture group is the literal line prefix a matching line starts
// with, so the captured text can be used directly as a date prefix.
type PrefixFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for diagnostics
	Example    string         // Example prefix
}

// DefaultFormats returns the built-in date shapes to detect.
// Formats are ordered roughly by specificity (more specific patterns first).
func DefaultFormats() []*PrefixFormat {
	formats := []*PrefixFormat{
		{
			Name:       "Bracketed ISO date",
			PatternStr: `^(\[\d{4}-\d{2}-\d{2})`,
			Example:    "[2025-09-05",
		},
		{
			Name:       "ISO date",
			PatternStr: `^(\d{4}-\d{2}-\d{2})`,
			Example:    "2025-09-05",
		},
		{
			Name:       "Slash date (4-digit year)",
			PatternStr: `^(\d{2}/\d{2}/\d{4})`,
			Example:    "09/05/2025",
		},
		{
			Name:       "Slash date (2-digit year)",
			PatternStr: `^(\d{2}/\d{2}/\d{2})\s`,
			Example:    "25/09/05",
		},
		{
			Name:       "Compact date (YYMMDD)",
			PatternStr: `^(\d{6})\s`,
			Example:    "250905",
		},
		{
			Name:       "Syslog month-day",
			PatternStr: `^(\w{3}\s+\d{1,2})\s`,
			Example:    "Sep  5",
		},
	}

	// Compile all patterns
	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
