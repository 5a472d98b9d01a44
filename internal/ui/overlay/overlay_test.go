package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(w, h int, ch string) string {
	return strings.TrimSuffix(strings.Repeat(strings.Repeat(ch, w)+"\n", h), "\n")
}

func TestPlace_Center(t *testing.T) {
	result := Place(Config{Width: 5, Height: 3, Position: Center}, "XX\nXX", grid(5, 3, "A"))

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "AXXAA", lines[1])
}

func TestPlace_TopWithPadding(t *testing.T) {
	result := Place(Config{Width: 5, Height: 5, Position: Top, PadY: 1}, "XX", grid(5, 5, "A"))

	lines := strings.Split(result, "\n")
	assert.Equal(t, "AAAAA", lines[0])
	assert.Equal(t, "AXXAA", lines[1])
}

func TestPlace_BottomCorners(t *testing.T) {
	bg := grid(6, 3, ".")

	left := strings.Split(Place(Config{Width: 6, Height: 3, Position: BottomLeft, PadX: 1}, "[]", bg), "\n")
	assert.Equal(t, ".[]...", left[2])

	right := strings.Split(Place(Config{Width: 6, Height: 3, Position: BottomRight}, "[]", bg), "\n")
	assert.Equal(t, "....[]", right[2])
}

func TestPlace_LargeForegroundIsClipped(t *testing.T) {
	result := Place(Config{Width: 3, Height: 3, Position: Center}, "XXXXX\nXXXXX", grid(3, 3, "A"))

	for _, line := range strings.Split(result, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 3)
	}
}

func TestPlaceAt_NegativeXClipsLeft(t *testing.T) {
	result := PlaceAt(-2, 0, 6, 1, "12345", "......")

	assert.Equal(t, "345...", result)
}

func TestPlaceAt_PastRightEdgeClipsRight(t *testing.T) {
	result := PlaceAt(4, 0, 6, 1, "12345", "......")

	assert.Equal(t, "....12", result)
}

func TestPlaceAt_FullyOffscreenLeavesBackground(t *testing.T) {
	bg := grid(6, 2, ".")

	assert.Equal(t, bg, PlaceAt(-10, 0, 6, 2, "1234", bg))
	assert.Equal(t, bg, PlaceAt(6, 0, 6, 2, "1234", bg))
}

func TestPlaceAt_PadsShortBackground(t *testing.T) {
	result := PlaceAt(0, 2, 4, 3, "XY", "....")

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "XY  ", lines[2])
}

func TestPlaceAt_PreservesStyledBackground(t *testing.T) {
	bg := "\x1b[31mRRRRRR\x1b[0m"

	result := PlaceAt(2, 0, 6, 1, "XX", bg)

	assert.Equal(t, "RRXXRR", ansi.Strip(result))
}

func TestDim_StripsAndKeepsText(t *testing.T) {
	result := Dim("\x1b[1mbold\x1b[0m\nplain", 5, 3)

	lines := strings.Split(ansi.Strip(result), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "bold", lines[0])
	assert.Equal(t, "plain", lines[1])
}
