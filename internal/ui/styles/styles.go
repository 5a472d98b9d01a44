// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"} // hints, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"}

	BorderDefaultColor   = lipgloss.AdaptiveColor{Light: "#B0B0B0", Dark: "#696969"}
	BorderHighlightColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#E0A800", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	ButtonTextColor           = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor      = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}

	// Slide-over panels
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#B0B0B0", Dark: "#8C8C8C"}

	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	// Matches board
	MatchLiveColor     = lipgloss.AdaptiveColor{Light: "#D63031", Dark: "#FF7675"}
	MatchScoreColor    = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#FFFFFF"}
	MatchFinishedColor = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#777777"}
	MatchUpcomingColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}

	// Chat thread
	ChatUserColor      = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	ChatAssistantColor = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}

	// Log panel levels
	LogDebugColor = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"}
	LogInfoColor  = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	LogWarnColor  = lipgloss.AdaptiveColor{Light: "#E0A800", Dark: "#FECA57"}
	LogErrorColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFFFFF"}
)

// Styles derived from the colors above. rebuildStyles refreshes them after
// ApplyTheme.
var (
	PrimaryButtonStyle        lipgloss.Style
	PrimaryButtonFocusedStyle lipgloss.Style
	ErrorStyle                lipgloss.Style
	HintStyle                 lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	base := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	PrimaryButtonStyle = base.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)
	PrimaryButtonFocusedStyle = base.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	for _, fn := range styleRebuilders {
		fn()
	}
}
