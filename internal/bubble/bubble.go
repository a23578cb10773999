// Package bubble renders wrapped message lines inside a bordered speech
// bubble drawn with Unicode box characters.
package bubble

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	BoxTopLeft     = "┌"
	BoxTopRight    = "┐"
	BoxBottomLeft  = "└"
	BoxBottomRight = "┘"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
)

// margin is the space between the border and the message on each side.
const margin = 3

// Render draws a bubble around the wrapped lines. The content width is the
// display width of the longest line; every body row carries a three-space
// margin on both sides, with one blank row above and below the message.
// Render is a pure function of its input.
func Render(wrapped []string) []string {
	content := contentWidth(wrapped)
	horizontal := strings.Repeat(BoxHorizontal, content+2*margin)

	out := make([]string, 0, len(wrapped)+4)
	out = append(out, BoxTopLeft+horizontal+BoxTopRight)
	out = append(out, bodyRow("", content))
	for _, line := range wrapped {
		out = append(out, bodyRow(line, content))
	}
	out = append(out, bodyRow("", content))
	out = append(out, BoxBottomLeft+horizontal+BoxBottomRight)
	return out
}

func bodyRow(line string, content int) string {
	pad := strings.Repeat(" ", margin)
	return BoxVertical + pad + runewidth.FillRight(line, content) + pad + BoxVertical
}

func contentWidth(wrapped []string) int {
	widest := 0
	for _, line := range wrapped {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
