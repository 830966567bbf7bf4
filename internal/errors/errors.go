// Package errors owns the CLI's exit path: a command failure is logged,
// printed once on stderr, and terminates the process with status 1.
package errors

import (
	"fmt"
	"os"

	"roozberooz/internal/logger"
)

func render(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs err and exits with status 1. A nil err is a no-op, so callers
// can pass command results through unconditionally.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(os.Stderr, render(err))
	os.Exit(1)
}

// Fatalf is Fatal with a format string.
func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
