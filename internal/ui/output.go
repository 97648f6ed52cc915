package ui

import (
	"fmt"
	"os"
)

// PrintError writes a styled error line to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorMsg("Error:"), fmt.Sprintf(format, args...))
}

// Fatal prints the error and exits with status 1.
func Fatal(format string, args ...any) {
	PrintError(format, args...)
	os.Exit(1)
}
