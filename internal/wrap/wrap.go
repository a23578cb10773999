// Package wrap provides word wrapping for speech-bubble content. Explicit
// line breaks and blank lines in the message are preserved; each paragraph
// wraps independently.
package wrap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Mode selects the wrapping algorithm.
type Mode int

const (
	// Greedy packs words onto lines with a manual accumulator.
	Greedy Mode = iota
	// Fold delegates per-paragraph wrapping to the ansi package's word
	// wrapper, which keeps escape sequences intact.
	Fold
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case Greedy:
		return "greedy"
	case Fold:
		return "fold"
	default:
		return "unknown"
	}
}

// ParseMode converts a config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "greedy":
		return Greedy, nil
	case "fold":
		return Fold, nil
	default:
		return 0, fmt.Errorf("unknown wrap mode %q", s)
	}
}

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Wrap greedily word-wraps message to width columns.
func Wrap(message string, width int) []string {
	return WrapWith(Greedy, message, width)
}

// WrapWith wraps message to width columns using the given mode. Widths
// below 1 are clamped to 1. Every line of the result fits within width
// except a single word wider than width, which stands alone unbroken.
// A trailing empty paragraph is dropped so messages ending in a newline
// do not grow a blank line.
func WrapWith(mode Mode, message string, width int) []string {
	if width < 1 {
		width = 1
	}

	paragraphs := strings.Split(message, "\n")
	if n := len(paragraphs); n > 1 && paragraphs[n-1] == "" {
		paragraphs = paragraphs[:n-1]
	}

	var lines []string
	for _, paragraph := range paragraphs {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		switch mode {
		case Fold:
			lines = append(lines, strings.Split(ansi.Wordwrap(paragraph, width, ""), "\n")...)
		default:
			lines = append(lines, wrapParagraph(paragraph, width)...)
		}
	}
	return lines
}

// wrapParagraph packs the paragraph's words onto lines, flushing whenever
// the next word plus its separator would exceed width.
func wrapParagraph(paragraph string, width int) []string {
	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(paragraph) {
		wordWidth := runewidth.StringWidth(word)
		switch {
		case currentWidth == 0:
			current.WriteString(word)
			currentWidth = wordWidth
		case currentWidth+1+wordWidth <= width:
			current.WriteByte(' ')
			current.WriteString(word)
			currentWidth += 1 + wordWidth
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = wordWidth
		}
	}
	if currentWidth > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
