// logexcerpt - Log Anomaly Excerpt Tool
//
// logexcerpt scans log files for runs of lines that do not start with the
// expected daily date prefix and extracts them together with a bounded
// window of surrounding normal lines.
package main

import (
	"os"

	"logexcerpt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
