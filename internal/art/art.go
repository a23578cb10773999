// Package art holds the fixed unicorn mascot blocks and the enums that
// select between them. The four variants are distinct hand-drawn literals;
// the left/right pairs are mirror-styled, not computed from each other.
package art

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Size selects which unicorn variant to render.
type Size int

const (
	SizeBig Size = iota
	SizeSmall
)

// String returns the string representation of Size.
func (s Size) String() string {
	switch s {
	case SizeBig:
		return "big"
	case SizeSmall:
		return "small"
	default:
		return "unknown"
	}
}

// ParseSize converts a flag or config value into a Size.
func ParseSize(s string) (Size, error) {
	switch s {
	case "big":
		return SizeBig, nil
	case "small":
		return SizeSmall, nil
	default:
		return 0, fmt.Errorf("unknown art size %q", s)
	}
}

// Side selects which way the unicorn faces and where it sits relative to
// the speech bubble.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the string representation of Side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseSide converts a flag or config value into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	default:
		return 0, fmt.Errorf("unknown art side %q", s)
	}
}

// Get returns the mascot block for the given size and side. Lines are not
// padded to a common width; the compositor pads during layout.
func Get(size Size, side Side) []string {
	if size == SizeSmall {
		if side == SideRight {
			return smallRight
		}
		return smallLeft
	}
	if side == SideRight {
		return bigRight
	}
	return bigLeft
}

// Width returns the display width of the widest line in a block.
func Width(block []string) int {
	widest := 0
	for _, line := range block {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

var bigLeft = []string{
	`  \`,
	`   \\`,
	`    \\ _`,
	`     \\/ \__________`,
	`     (o)            \____`,
	`      \_  \   \          \`,
	`        \  \   \          \`,
	`        | |    | |       | |`,
	`        | |    | |       | |`,
	`        | |    | |       | |`,
	`        ^^^    ^^^       ^^^`,
}

var bigRight = []string{
	`                      /`,
	`                    _//`,
	`         __________/ \//`,
	`    ____/            (o)`,
	`   /          /   /  _/`,
	`  /          /   /  /`,
	`  | |      | |    | |`,
	`  | |      | |    | |`,
	`  | |      | |    | |`,
	`  ^^^      ^^^    ^^^`,
}

var smallLeft = []string{
	`  \`,
	`   \\_`,
	`   (o)\_____`,
	`    \_  \   \`,
	`     ||  |  |`,
	`     ^^  ^  ^`,
}

var smallRight = []string{
	`        /`,
	`      _//`,
	` ____/(o)`,
	`/   /  _/`,
	`|  |  ||`,
	`^  ^  ^^`,
}
