// Package layout decides how the bubble and mascot are arranged and runs
// the render pipeline. Terminal dimensions are explicit parameters so the
// whole package stays pure and testable without a terminal attached.
package layout

import (
	"github.com/ariel-frischer/unisay/internal/art"
	"github.com/ariel-frischer/unisay/internal/bubble"
	"github.com/ariel-frischer/unisay/internal/compose"
	"github.com/ariel-frischer/unisay/internal/wrap"
)

const (
	// Terminals shorter than this get the small mascot.
	smallHeightCutoff = 15
	// Terminals narrower than this stack the bubble above the mascot.
	stackWidthCutoff = 60
	// Columns consumed by the bubble frame and margins when computing the
	// wrap width.
	bubbleOverhead = 9
)

// Options carries the user's explicit layout choices. ForceSize marks Size
// as user-chosen; otherwise terminal height picks it.
type Options struct {
	Size      art.Size
	ForceSize bool
	Side      art.Side
	Above     bool
}

// Decision is the layout resolved for one run. It is derived once and
// never mutated.
type Decision struct {
	Size      art.Size
	Side      art.Side
	Stacked   bool
	WrapWidth int
}

// Decide resolves the layout from the user's options and the terminal
// dimensions. The wrap width reserves room for the bubble frame plus,
// when composing side-by-side, the mascot's width; it never drops below 1.
func Decide(opts Options, termWidth, termHeight int) Decision {
	d := Decision{Side: opts.Side}

	switch {
	case opts.ForceSize:
		d.Size = opts.Size
	case termHeight < smallHeightCutoff:
		d.Size = art.SizeSmall
	default:
		d.Size = art.SizeBig
	}

	d.Stacked = opts.Above || termWidth < stackWidthCutoff

	offset := 0
	if !d.Stacked {
		offset = art.Width(art.Get(d.Size, d.Side))
	}
	d.WrapWidth = termWidth - bubbleOverhead - offset
	if d.WrapWidth < 1 {
		d.WrapWidth = 1
	}
	return d
}

// Render wraps the message, draws the bubble, and composes it with the
// mascot per the decision. Side-by-side placement puts the mascot on the
// decided side; stacked placement puts the bubble first.
func Render(message string, mode wrap.Mode, d Decision, termWidth int) []string {
	wrapped := wrap.WrapWith(mode, message, d.WrapWidth)
	speech := bubble.Render(wrapped)
	mascot := art.Get(d.Size, d.Side)

	if d.Stacked {
		return compose.Stacked(speech, mascot, d.Side, termWidth)
	}
	if d.Side == art.SideRight {
		return compose.SideBySide(speech, mascot)
	}
	return compose.SideBySide(mascot, speech)
}
