package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// resetTheme restores the default colors after a test changes them.
func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, ApplyTheme(ThemeConfig{}))
	})
}

func TestPresets_CoverEveryToken(t *testing.T) {
	for name, preset := range Presets {
		require.Equal(t, name, preset.Name)
		for _, token := range AllTokens() {
			color, ok := preset.Colors[token]
			require.True(t, ok, "preset %s is missing %s", name, token)
			require.True(t, isValidHexColor(color), "preset %s has bad %s: %s", name, token, color)
		}
		require.Len(t, preset.Colors, len(AllTokens()), "preset %s has unknown tokens", name)
	}
}

func TestApplyTheme_Preset(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "nord"}))
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#4C566A", Dark: "#4C566A"}, OverlayBorderColor)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#BF616A", Dark: "#BF616A"}, MatchLiveColor)
}

func TestApplyTheme_OverridesWinOverPreset(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{
		Preset: "dracula",
		Colors: map[string]string{"overlay.border": "#123456", "text.muted": "#abc"},
	}))
	require.Equal(t, "#123456", OverlayBorderColor.Dark)
	require.Equal(t, "#abc", TextMutedColor.Dark)
	require.Equal(t, "#BD93F9", BorderHighlightColor.Dark)
}

func TestApplyTheme_Errors(t *testing.T) {
	resetTheme(t)
	before := OverlayBorderColor

	err := ApplyTheme(ThemeConfig{Preset: "solarized"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "dracula")

	require.Error(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"issue.status.open": "#FFFFFF"}}))
	require.Error(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"overlay.border": "red"}}))
	require.Equal(t, before, OverlayBorderColor, "invalid themes leave colors alone")
}

func TestApplyTheme_RunsRebuilders(t *testing.T) {
	resetTheme(t)
	calls := 0
	RegisterStyleRebuilder(func() { calls++ })
	t.Cleanup(func() { styleRebuilders = styleRebuilders[:len(styleRebuilders)-1] })

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "high-contrast"}))
	require.Equal(t, 1, calls)
}

func TestIsValidHexColor(t *testing.T) {
	for s, want := range map[string]bool{
		"#FFF": true, "#a1b2c3": true, "FFF": false, "#FFFF": false, "#GGGGGG": false, "": false,
	} {
		require.Equal(t, want, isValidHexColor(s), s)
	}
}

func TestTitledBox_Dimensions(t *testing.T) {
	out := TitledBox("line one\nline two is much longer than the box", "Premier League", 20, 5, BorderDefaultColor)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		require.Equal(t, 20, ansi.StringWidth(line))
	}
	require.True(t, strings.HasPrefix(ansi.Strip(lines[0]), "╭─ Premier League"))
	require.Contains(t, ansi.Strip(lines[1]), "line one")
}

func TestTitledBox_LongTitleTruncates(t *testing.T) {
	out := TitledBox("", "A very long competition name", 12, 3, BorderDefaultColor)
	top := ansi.Strip(strings.Split(out, "\n")[0])
	require.Equal(t, 12, ansi.StringWidth(top))
	require.Contains(t, top, "…")
}

func TestTitledBox_NoTitle(t *testing.T) {
	top := ansi.Strip(strings.Split(TitledBox("x", "", 6, 3, BorderDefaultColor), "\n")[0])
	require.Equal(t, "╭────╮", top)
}
