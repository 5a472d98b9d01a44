// Package help contains the keybinding overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/sporthub/sporthub/internal/keys"
	"github.com/sporthub/sporthub/internal/ui/overlay"
	"github.com/sporthub/sporthub/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextDescriptionColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	debug  bool
	width  int
	height int
}

// New creates the help view. With debug set the log panel keys are listed.
func New(debug bool) Model {
	return Model{keys: keys.DefaultKeyMap(), debug: debug}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.renderContent()
	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var board strings.Builder
	board.WriteString(sectionStyle.Render("Matches"))
	board.WriteString("\n")
	board.WriteString(renderBinding(m.keys.Up))
	board.WriteString(renderBinding(m.keys.Down))
	board.WriteString(renderBinding(m.keys.PageUp))
	board.WriteString(renderBinding(m.keys.PageDown))

	var chat strings.Builder
	chat.WriteString(sectionStyle.Render("Assistant"))
	chat.WriteString("\n")
	chat.WriteString(renderBinding(m.keys.OpenChat))
	chat.WriteString(renderBinding(keys.Chat.Send))
	chat.WriteString(renderBinding(keys.Chat.CopyReply))
	chat.WriteString(renderBinding(keys.Chat.ForgetKey))
	chat.WriteString(renderKeyDesc("drag", "swipe to dismiss"))

	var general strings.Builder
	general.WriteString(sectionStyle.Render("General"))
	general.WriteString("\n")
	if m.debug {
		general.WriteString(renderBinding(m.keys.ToggleLogs))
		general.WriteString(renderBinding(keys.Logs.Clear))
		general.WriteString(renderKeyDesc("d/i/w/e", "log level"))
	}
	general.WriteString(renderBinding(m.keys.Escape))
	general.WriteString(renderBinding(m.keys.Help))
	general.WriteString(renderBinding(m.keys.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(board.String()),
		columnStyle.Render(chat.String()),
		general.String(),
	)

	boxWidth := lipgloss.Width(columns) + 4
	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press ? or Esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func renderBinding(b key.Binding) string {
	h := b.Help()
	return renderKeyDesc(h.Key, h.Desc)
}

func renderKeyDesc(key, desc string) string {
	return keyStyle.Render(key) + descStyle.Render(desc) + "\n"
}
