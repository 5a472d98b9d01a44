package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/sporthub/sporthub/internal/cachemanager"
)

func TestRenderer_Render(t *testing.T) {
	r, err := New(40, "notty")
	require.NoError(t, err)
	require.Equal(t, 40, r.Width())

	out, err := r.Render("Kick-off at **19:00**\n\n- bring boots\n- bring water")
	require.NoError(t, err)
	plain := ansi.Strip(out)
	require.Contains(t, plain, "19:00")
	require.Contains(t, plain, "bring boots")
	require.False(t, strings.HasSuffix(out, "\n"))
}

func TestRenderer_Wraps(t *testing.T) {
	r, err := New(20, "notty")
	require.NoError(t, err)
	out, err := r.Render(strings.Repeat("word ", 20))
	require.NoError(t, err)
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 20)
	}
}

func TestCache_RendersOncePerWidth(t *testing.T) {
	c := NewCache("notty")
	ctx := context.Background()

	first, err := c.Render(ctx, "msg-1", 30, "# Title")
	require.NoError(t, err)

	// Same id and width: cached, even if the text argument changes.
	again, err := c.Render(ctx, "msg-1", 30, "something else")
	require.NoError(t, err)
	require.Equal(t, first, again)

	narrow, err := c.Render(ctx, "msg-1", 12, "something else")
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(narrow), "something")

	require.Len(t, c.renderers, 2)
	require.Equal(t, cachemanager.Stats{Hits: 1, Misses: 2}, c.rt.Stats())
}
