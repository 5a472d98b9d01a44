package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporthub/sporthub/internal/keys"
)

func TestHelp_SetSize(t *testing.T) {
	m := New(false).SetSize(120, 40)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)

	m2 := m.SetSize(80, 24)
	assert.Equal(t, 80, m2.width)
	assert.Equal(t, 120, m.width, "expected original model width unchanged")
}

func TestHelp_View_ContainsSections(t *testing.T) {
	view := New(false).SetSize(120, 30).View()

	assert.Contains(t, view, "Keybindings")
	assert.Contains(t, view, "Matches")
	assert.Contains(t, view, "Assistant")
	assert.Contains(t, view, "General")
	assert.Contains(t, view, "Press ? or Esc to close")
}

func TestHelp_View_ContainsKeybindings(t *testing.T) {
	view := ansi.Strip(New(false).SetSize(120, 30).View())

	assert.Contains(t, view, "j/↓")
	assert.Contains(t, view, "ask the assistant")
	assert.Contains(t, view, keys.Chat.CopyReply.Help().Desc)
	assert.Contains(t, view, "swipe to dismiss")
	assert.NotContains(t, view, "toggle logs", "log keys are debug only")
}

func TestHelp_View_DebugListsLogKeys(t *testing.T) {
	view := ansi.Strip(New(true).SetSize(120, 30).View())
	assert.Contains(t, view, "toggle logs")
	assert.Contains(t, view, "log level")
}

func TestHelp_Overlay_BackgroundPreservation(t *testing.T) {
	m := New(false).SetSize(120, 30)
	bg := strings.Repeat(strings.Repeat("#", 120)+"\n", 29) + strings.Repeat("#", 120)

	out := m.Overlay(bg)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 30)
	assert.Contains(t, lines[0], "###", "rows above the box keep the background")
	assert.Contains(t, out, "Keybindings")
}

func TestHelp_Overlay_EmptyBackgroundCenters(t *testing.T) {
	view := New(false).SetSize(140, 40).View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 40)

	first := -1
	for i, line := range lines {
		if strings.TrimSpace(ansi.Strip(line)) != "" {
			first = i
			break
		}
	}
	require.Greater(t, first, 0, "box is vertically centred")
}
