// Package parser provides log file reading and input path expansion.
// It is a thin I/O layer: the extraction core operates on the in-memory
// line sequence this package produces.
package parser

import (
	"bufio"
	"fmt"
	"os"
)

// maxLineSize is the largest single log line the scanner accepts.
const maxLineSize = 1024 * 1024 // 1MB

// ReadLines reads an entire log file into an ordered line sequence.
// Trailing newlines are stripped; line order and content are otherwise
// preserved exactly.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return lines, nil
}
