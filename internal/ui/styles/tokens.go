package styles

import "github.com/charmbracelet/lipgloss"

// ColorToken is the config key of a themeable color.
type ColorToken string

const (
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextDescription ColorToken = "text.description"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderHighlight ColorToken = "border.highlight"

	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	TokenButtonText           ColorToken = "button.text"
	TokenButtonPrimaryBg      ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg ColorToken = "button.primary.focus"

	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	TokenMatchLive     ColorToken = "match.live"
	TokenMatchScore    ColorToken = "match.score"
	TokenMatchFinished ColorToken = "match.finished"
	TokenMatchUpcoming ColorToken = "match.upcoming"

	TokenChatUser      ColorToken = "chat.user"
	TokenChatAssistant ColorToken = "chat.assistant"

	TokenLogDebug ColorToken = "log.debug"
	TokenLogInfo  ColorToken = "log.info"
	TokenLogWarn  ColorToken = "log.warn"
	TokenLogError ColorToken = "log.error"

	TokenSpinner ColorToken = "spinner"
)

// tokenTargets binds each token to the color variables it sets. Order is
// the order AllTokens reports.
var tokenTargets = []struct {
	token   ColorToken
	targets []*lipgloss.AdaptiveColor
}{
	{TokenTextPrimary, []*lipgloss.AdaptiveColor{&TextPrimaryColor}},
	{TokenTextSecondary, []*lipgloss.AdaptiveColor{&TextSecondaryColor}},
	{TokenTextMuted, []*lipgloss.AdaptiveColor{&TextMutedColor}},
	{TokenTextDescription, []*lipgloss.AdaptiveColor{&TextDescriptionColor}},
	{TokenTextPlaceholder, []*lipgloss.AdaptiveColor{&TextPlaceholderColor}},
	{TokenBorderDefault, []*lipgloss.AdaptiveColor{&BorderDefaultColor}},
	{TokenBorderHighlight, []*lipgloss.AdaptiveColor{&BorderHighlightColor}},
	{TokenStatusSuccess, []*lipgloss.AdaptiveColor{&StatusSuccessColor}},
	{TokenStatusWarning, []*lipgloss.AdaptiveColor{&StatusWarningColor}},
	{TokenStatusError, []*lipgloss.AdaptiveColor{&StatusErrorColor}},
	{TokenButtonText, []*lipgloss.AdaptiveColor{&ButtonTextColor}},
	{TokenButtonPrimaryBg, []*lipgloss.AdaptiveColor{&ButtonPrimaryBgColor}},
	{TokenButtonPrimaryFocusBg, []*lipgloss.AdaptiveColor{&ButtonPrimaryFocusBgColor}},
	{TokenOverlayTitle, []*lipgloss.AdaptiveColor{&OverlayTitleColor}},
	{TokenOverlayBorder, []*lipgloss.AdaptiveColor{&OverlayBorderColor}},
	{TokenToastSuccess, []*lipgloss.AdaptiveColor{&ToastBorderSuccessColor}},
	{TokenToastError, []*lipgloss.AdaptiveColor{&ToastBorderErrorColor}},
	{TokenToastInfo, []*lipgloss.AdaptiveColor{&ToastBorderInfoColor}},
	{TokenToastWarn, []*lipgloss.AdaptiveColor{&ToastBorderWarnColor}},
	{TokenMatchLive, []*lipgloss.AdaptiveColor{&MatchLiveColor}},
	{TokenMatchScore, []*lipgloss.AdaptiveColor{&MatchScoreColor}},
	{TokenMatchFinished, []*lipgloss.AdaptiveColor{&MatchFinishedColor}},
	{TokenMatchUpcoming, []*lipgloss.AdaptiveColor{&MatchUpcomingColor}},
	{TokenChatUser, []*lipgloss.AdaptiveColor{&ChatUserColor}},
	{TokenChatAssistant, []*lipgloss.AdaptiveColor{&ChatAssistantColor}},
	{TokenLogDebug, []*lipgloss.AdaptiveColor{&LogDebugColor}},
	{TokenLogInfo, []*lipgloss.AdaptiveColor{&LogInfoColor}},
	{TokenLogWarn, []*lipgloss.AdaptiveColor{&LogWarnColor}},
	{TokenLogError, []*lipgloss.AdaptiveColor{&LogErrorColor}},
	{TokenSpinner, []*lipgloss.AdaptiveColor{&SpinnerColor}},
}

// AllTokens returns every themeable token.
func AllTokens() []ColorToken {
	tokens := make([]ColorToken, len(tokenTargets))
	for i, t := range tokenTargets {
		tokens[i] = t.token
	}
	return tokens
}

func isValidToken(token ColorToken) bool {
	for _, t := range tokenTargets {
		if t.token == token {
			return true
		}
	}
	return false
}
