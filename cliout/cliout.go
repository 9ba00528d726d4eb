// Package cliout provides consistent output formatting for the envlink CLI.
// Status lines use ANSI colors and Unicode symbols when stdout is a
// terminal; color is disabled automatically for pipes, NO_COLOR, and dumb
// terminals.
package cliout

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ANSI color codes for consistent styling.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	gray   = "\033[90m"
)

// Unicode symbols for status lines.
const (
	symbolCheck   = "✓"
	symbolCross   = "✗"
	symbolWarning = "⚠"
	symbolInfo    = "ℹ"
)

var (
	colorMu      sync.RWMutex
	colorEnabled = detectColor()
)

// detectColor decides the initial color setting: stdout must be a terminal,
// NO_COLOR must be unset, and TERM must not be "dumb".
func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// SetColorEnabled overrides color detection, e.g. for --no-color flags or tests.
func SetColorEnabled(enabled bool) {
	colorMu.Lock()
	defer colorMu.Unlock()
	colorEnabled = enabled
}

// ColorEnabled reports whether output uses ANSI colors.
func ColorEnabled() bool {
	colorMu.RLock()
	defer colorMu.RUnlock()
	return colorEnabled
}

func colorize(color, text string) string {
	if !ColorEnabled() {
		return text
	}
	return color + text + reset
}

// Header prints a bold section header.
func Header(text string) {
	fmt.Println(colorize(bold, text))
}

// Label prints an aligned "label: value" row.
func Label(label, value string) {
	fmt.Printf("  %s %s\n", colorize(gray, label+":"), value)
}

// Success prints a success status line to stdout.
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(green, symbolCheck), fmt.Sprintf(format, args...))
}

// Error prints an error status line to stderr.
func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(red, symbolCross), fmt.Sprintf(format, args...))
}

// Warning prints a warning status line to stderr.
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(yellow, symbolWarning), fmt.Sprintf(format, args...))
}

// Info prints an informational status line to stdout.
func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(cyan, symbolInfo), fmt.Sprintf(format, args...))
}

// Plain prints an unstyled line to stdout.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
