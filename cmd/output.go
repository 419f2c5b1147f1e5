package cmd

import (
	"fmt"
	"os"
	"strings"
)

// Shared output helpers so icon usage and indentation stay consistent
// across commands: ✓ success, ✗ error (stderr), ⚠ warning.

// separator returns the horizontal rule used between playbook sections.
func separator() string {
	return strings.Repeat("-", 40)
}

// clipSummary truncates text to limit runes, appending "..." when clipped.
func clipSummary(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func printOK(msg string) {
	fmt.Printf("  ✓  %s\n", msg)
}

func printErr(msg string) {
	fmt.Fprintf(os.Stderr, "  ✗  %s\n", msg)
}

func printWarn(msg string) {
	fmt.Printf("  ⚠  %s\n", msg)
}
