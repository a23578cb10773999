// Package terminal probes the attached terminal for size and capabilities.
// Every query degrades to a safe default, so callers never see an error.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions used when the size query fails, e.g. when output is
// piped or no terminal is attached.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Capabilities describes the terminal attached to stdout.
type Capabilities struct {
	IsTTY         bool
	SupportsColor bool
	Width         int
	Height        int
}

// Detect probes stdout and the environment for terminal capabilities.
func Detect() Capabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	noColor := os.Getenv("NO_COLOR") != ""
	width, height := Size()

	return Capabilities{
		IsTTY:         isTTY,
		SupportsColor: isTTY && !noColor,
		Width:         width,
		Height:        height,
	}
}

// Size returns the terminal dimensions, falling back to 80x24 when the
// query fails or reports a nonsensical size.
func Size() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}

// StdinIsPipe reports whether stdin is receiving piped data rather than
// keyboard input.
func StdinIsPipe() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}
