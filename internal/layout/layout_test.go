package layout

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/unisay/internal/art"
	"github.com/ariel-frischer/unisay/internal/wrap"
)

func TestDecide(t *testing.T) {
	bigLeftWidth := art.Width(art.Get(art.SizeBig, art.SideLeft))
	smallLeftWidth := art.Width(art.Get(art.SizeSmall, art.SideLeft))

	tests := []struct {
		name     string
		opts     Options
		width    int
		height   int
		expected Decision
	}{
		{
			name:     "standard terminal",
			width:    80,
			height:   24,
			expected: Decision{Size: art.SizeBig, Side: art.SideLeft, WrapWidth: 80 - 9 - bigLeftWidth},
		},
		{
			name:     "short terminal selects small art",
			width:    80,
			height:   10,
			expected: Decision{Size: art.SizeSmall, Side: art.SideLeft, WrapWidth: 80 - 9 - smallLeftWidth},
		},
		{
			name:     "height cutoff is exclusive at fifteen rows",
			width:    80,
			height:   15,
			expected: Decision{Size: art.SizeBig, Side: art.SideLeft, WrapWidth: 80 - 9 - bigLeftWidth},
		},
		{
			name:     "narrow terminal stacks",
			width:    40,
			height:   24,
			expected: Decision{Size: art.SizeBig, Side: art.SideLeft, Stacked: true, WrapWidth: 31},
		},
		{
			name:     "width cutoff is exclusive at sixty columns",
			width:    60,
			height:   24,
			expected: Decision{Size: art.SizeBig, Side: art.SideLeft, WrapWidth: 60 - 9 - bigLeftWidth},
		},
		{
			name:     "forced small art on tall terminal",
			opts:     Options{Size: art.SizeSmall, ForceSize: true},
			width:    80,
			height:   24,
			expected: Decision{Size: art.SizeSmall, Side: art.SideLeft, WrapWidth: 80 - 9 - smallLeftWidth},
		},
		{
			name:     "above flag stacks a wide terminal",
			opts:     Options{Above: true},
			width:    200,
			height:   24,
			expected: Decision{Size: art.SizeBig, Side: art.SideLeft, Stacked: true, WrapWidth: 191},
		},
		{
			name:     "right side keeps side in decision",
			opts:     Options{Side: art.SideRight},
			width:    40,
			height:   24,
			expected: Decision{Size: art.SizeBig, Side: art.SideRight, Stacked: true, WrapWidth: 31},
		},
		{
			name:     "tiny terminal clamps wrap width to one",
			width:    5,
			height:   24,
			expected: Decision{Size: art.SizeBig, Side: art.SideLeft, Stacked: true, WrapWidth: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decide(tt.opts, tt.width, tt.height))
		})
	}
}

func TestRenderSideBySideStartsWithArt(t *testing.T) {
	d := Decide(Options{}, 80, 24)
	require.False(t, d.Stacked)

	out := Render("Hi", wrap.Greedy, d, 80)
	mascot := art.Get(art.SizeBig, art.SideLeft)
	require.Greater(t, len(mascot), 5, "big art must be taller than a two-letter bubble")

	assert.Len(t, out, len(mascot))
	assert.True(t, strings.HasPrefix(out[0], mascot[0]), "first row %q should begin with the art's first line", out[0])
	assert.Contains(t, strings.Join(out, "\n"), "┌────────┐")

	// Bottom alignment: the art's last row and the bubble's bottom border
	// share the final output row.
	last := out[len(out)-1]
	assert.True(t, strings.HasPrefix(last, mascot[len(mascot)-1]))
	assert.True(t, strings.HasSuffix(last, "└────────┘"))
}

func TestRenderRightSidePutsBubbleFirst(t *testing.T) {
	d := Decide(Options{Side: art.SideRight}, 80, 24)
	require.False(t, d.Stacked)

	out := Render("Hi", wrap.Greedy, d, 80)
	mascot := art.Get(art.SizeBig, art.SideRight)

	// Bubble is the left column, so its bottom border starts the last row.
	last := out[len(out)-1]
	assert.True(t, strings.HasPrefix(last, "└────────┘"))
	assert.True(t, strings.HasSuffix(last, mascot[len(mascot)-1]))
}

func TestRenderNarrowTerminalStacksBubbleFirst(t *testing.T) {
	d := Decide(Options{}, 40, 24)
	require.True(t, d.Stacked)

	out := Render("Hello world this is a long message exceeding typical bubble width for testing", wrap.Greedy, d, 40)
	mascot := art.Get(art.SizeBig, art.SideLeft)

	assert.True(t, strings.HasPrefix(out[0], "┌"))
	assert.Equal(t, mascot, out[len(out)-len(mascot):])
	for _, row := range out {
		assert.LessOrEqual(t, runewidth.StringWidth(row), 40)
	}
}

func TestRenderStackedRightJustifiesArt(t *testing.T) {
	d := Decide(Options{Size: art.SizeSmall, ForceSize: true, Side: art.SideRight, Above: true}, 80, 24)
	require.True(t, d.Stacked)
	require.Equal(t, art.SizeSmall, d.Size)

	out := Render("x", wrap.Greedy, d, 80)
	mascot := art.Get(art.SizeSmall, art.SideRight)

	assert.True(t, strings.HasPrefix(out[0], "┌"))
	for _, row := range out[len(out)-len(mascot):] {
		assert.Equal(t, 80, runewidth.StringWidth(row), "art row %q should be right-justified to the terminal width", row)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	d := Decide(Options{}, 80, 24)
	message := "same message\n\nsame terminal"

	first := strings.Join(Render(message, wrap.Greedy, d, 80), "\n")
	second := strings.Join(Render(message, wrap.Greedy, d, 80), "\n")
	assert.Equal(t, first, second)
}

func TestRenderFoldMode(t *testing.T) {
	d := Decide(Options{}, 40, 24)
	out := Render("the quick brown fox jumps over the lazy dog", wrap.Fold, d, 40)
	require.NotEmpty(t, out)
	for _, row := range out {
		assert.LessOrEqual(t, runewidth.StringWidth(row), 40)
	}
}
