// Package compose merges rectangular text blocks for final output, either
// side-by-side (mascot beside the bubble) or stacked (bubble above the
// mascot).
package compose

import (
	"github.com/mattn/go-runewidth"

	"github.com/ariel-frischer/unisay/internal/art"
)

// SideBySide merges two blocks horizontally. The shorter block is padded
// with leading empty lines so both end on the same row (bottom alignment),
// then each left row is padded to the left block's widest line and
// concatenated directly with the right row.
func SideBySide(left, right []string) []string {
	widest := 0
	for _, line := range left {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}

	rows := max(len(left), len(right))
	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, runewidth.FillRight(lineAt(left, i, rows), widest)+lineAt(right, i, rows))
	}
	return out
}

// lineAt returns the block's line for output row i once the block is
// notionally padded with leading empty lines to rows total.
func lineAt(block []string, i, rows int) string {
	j := i - (rows - len(block))
	if j < 0 {
		return ""
	}
	return block[j]
}

// Stacked emits the bubble full width and unmodified, followed by the
// mascot. For a right-side mascot every art row is right-justified to
// termWidth; a left-side mascot is emitted as-is.
func Stacked(bubble, mascot []string, side art.Side, termWidth int) []string {
	out := make([]string, 0, len(bubble)+len(mascot))
	out = append(out, bubble...)
	for _, line := range mascot {
		if side == art.SideRight {
			line = runewidth.FillLeft(line, termWidth)
		}
		out = append(out, line)
	}
	return out
}
