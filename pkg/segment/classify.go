package segment

import "strings"

// IsExpected reports whether line belongs to the expected class, i.e.
// its text starts with prefix. The match is byte-wise, case-sensitive,
// and does no trimming.
func IsExpected(line, prefix string) bool {
	return strings.HasPrefix(line, prefix)
}
