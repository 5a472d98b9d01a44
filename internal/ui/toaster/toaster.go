// Package toaster shows short notifications at the bottom of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sporthub/sporthub/internal/ui/overlay"
	"github.com/sporthub/sporthub/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Style determines the border color and icon of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// ShowMsg asks the host to display a toast. Components that do not own the
// toaster return it from a tea.Cmd.
type ShowMsg struct {
	Message string
	Style   Style
}

// Show returns a command emitting ShowMsg.
func Show(message string, style Style) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Message: message, Style: style} }
}

// DismissMsg hides the toast it was scheduled for. A newer toast ignores it.
type DismissMsg struct {
	Seq int
}

// Model holds the toaster state.
type Model struct {
	message  string
	style    Style
	visible  bool
	seq      int
	duration time.Duration
}

// New creates a toaster that dismisses after DefaultDuration.
func New() Model {
	return Model{duration: DefaultDuration}
}

// WithDuration changes how long toasts stay up.
func (m Model) WithDuration(d time.Duration) Model {
	m.duration = d
	return m
}

// Update handles ShowMsg and DismissMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		return m.Show(msg.Message, msg.Style)
	case DismissMsg:
		if msg.Seq == m.seq {
			m = m.Hide()
		}
	}
	return m, nil
}

// Show displays message, replacing any current toast, and schedules its
// dismissal.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.style = style
	m.visible = true
	seq := m.seq
	return m, tea.Tick(m.duration, func(time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the current toast.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	var (
		color lipgloss.TerminalColor
		icon  string
	)
	switch m.style {
	case StyleError:
		color, icon = styles.ToastBorderErrorColor, "✗"
	case StyleInfo:
		color, icon = styles.ToastBorderInfoColor, "i"
	case StyleWarn:
		color, icon = styles.ToastBorderWarnColor, "!"
	default:
		color, icon = styles.ToastBorderSuccessColor, "✓"
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Render(lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon) + " " + m.message)
}

// Overlay draws the toast bottom-centre on bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}
