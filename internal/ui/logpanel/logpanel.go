// Package logpanel is the debug log viewer: a right slide-over tailing the
// structured log.
package logpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sporthub/sporthub/internal/keys"
	"github.com/sporthub/sporthub/internal/log"
	"github.com/sporthub/sporthub/internal/pubsub"
	"github.com/sporthub/sporthub/internal/shared"
	"github.com/sporthub/sporthub/internal/ui/slideover"
	"github.com/sporthub/sporthub/internal/ui/styles"
)

// PanelID identifies the log panel's Context and lease.
const PanelID = "logs"

// Model is the log panel.
type Model struct {
	ctx      *slideover.Context
	panel    slideover.Model
	listener *log.LogListener

	viewport viewport.Model
	minLevel log.Level
	shown    int // entries passing the filter

	width, height int
}

// New builds the panel. listener may be nil when logging is off; the panel
// then shows whatever the buffer holds when opened.
func New(ctx *slideover.Context, lock *slideover.ScrollLock, listener *log.LogListener) Model {
	return Model{
		ctx:      ctx,
		panel:    slideover.New(ctx, lock),
		listener: listener,
		viewport: viewport.New(0, 0),
		minLevel: log.LevelDebug,
	}
}

// WithClock replaces the panel's time source.
func (m Model) WithClock(c shared.Clock) Model {
	m.panel = m.panel.WithClock(c)
	return m
}

// Init starts tailing the log.
func (m Model) Init() tea.Cmd {
	if m.listener == nil {
		return nil
	}
	return m.listener.Listen()
}

// Panel returns the underlying slide-over.
func (m Model) Panel() slideover.Model { return m.panel }

// Context returns the panel's open state.
func (m Model) Context() *slideover.Context { return m.ctx }

// MinLevel returns the active filter.
func (m Model) MinLevel() log.Level { return m.minLevel }

// Update handles panel input, filter keys and new log lines.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	wasOpen := m.ctx.IsOpen()
	m.panel, cmd = m.panel.Update(msg)
	cmds = append(cmds, cmd)

	switch msg := msg.(type) {
	case pubsub.Event[string]:
		if msg.Type == pubsub.AppendedEvent && m.panel.Visible() {
			m = m.refresh()
		}
		if m.listener != nil {
			cmds = append(cmds, m.listener.Listen())
		}

	case tea.KeyMsg:
		if m.panel.WantsKeys() {
			m = m.handleKey(msg)
		}

	case tea.MouseMsg:
		if m.panel.WantsMouse() && tea.MouseEvent(msg).IsWheel() {
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if w, h := m.panel.InnerSize(); w != m.width || h != m.height {
		m = m.layout()
	} else if !wasOpen && m.ctx.IsOpen() {
		m = m.refresh()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, keys.Logs.Clear):
		log.ClearBuffer()
		return m.refresh()
	case key.Matches(msg, keys.Logs.ScrollUp):
		m.viewport.ScrollUp(1)
		return m
	case key.Matches(msg, keys.Logs.ScrollDown):
		m.viewport.ScrollDown(1)
		return m
	}

	switch msg.String() {
	case "g":
		m.viewport.GotoTop()
	case "G":
		m.viewport.GotoBottom()
	case "d":
		m.minLevel = log.LevelDebug
		return m.refresh()
	case "i":
		m.minLevel = log.LevelInfo
		return m.refresh()
	case "w":
		m.minLevel = log.LevelWarn
		return m.refresh()
	case "e":
		m.minLevel = log.LevelError
		return m.refresh()
	}
	return m
}

func (m Model) header() slideover.Header {
	return slideover.NewHeader(m.ctx, "Logs", fmt.Sprintf("%s and above · %d entries", m.minLevel, m.shown))
}

func (m Model) layout() Model {
	m.width, m.height = m.panel.InnerSize()
	if m.width <= 0 || m.height <= 0 {
		return m
	}
	headerHeight := lipgloss.Height(m.header().Render(m.width))
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-headerHeight-2, 1) // blank line, footer
	return m.refresh()
}

// refresh reloads the buffer into the viewport. It must not log: every
// log line would trigger another refresh.
func (m Model) refresh() Model {
	if m.width <= 0 {
		return m
	}
	follow := m.viewport.AtBottom()

	var lines []string
	for _, e := range log.GetRecentLogs(0) {
		if e.Level < m.minLevel {
			continue
		}
		lines = append(lines, colorize(e, m.width))
	}
	m.shown = len(lines)

	if len(lines) == 0 {
		m.viewport.SetContent(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Render("No logs to display"))
		return m
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if follow || m.viewport.TotalLineCount() <= m.viewport.Height {
		m.viewport.GotoBottom()
	}
	return m
}

func colorize(e log.Entry, width int) string {
	line := strings.TrimSuffix(e.Line, "\n")
	if ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	var color lipgloss.TerminalColor
	switch e.Level {
	case log.LevelError:
		color = styles.LogErrorColor
	case log.LevelWarn:
		color = styles.LogWarnColor
	case log.LevelInfo:
		color = styles.LogInfoColor
	default:
		color = styles.LogDebugColor
	}
	return lipgloss.NewStyle().Foreground(color).Render(line)
}

// filterHint lists the level keys with the active one emphasised.
func (m Model) filterHint() string {
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{hint.Render("ctrl+l clear")}
	for _, f := range []struct {
		key   string
		label string
		level log.Level
	}{
		{"d", "debug", log.LevelDebug},
		{"i", "info", log.LevelInfo},
		{"w", "warn", log.LevelWarn},
		{"e", "error", log.LevelError},
	} {
		style := hint
		if f.level == m.minLevel {
			style = active
		}
		parts = append(parts, style.Render(f.key+" "+f.label))
	}
	return ansi.Truncate(strings.Join(parts, "  "), max(m.width, 0), "…")
}

// View renders the panel content.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	return strings.Join([]string{
		m.header().Render(m.width),
		m.viewport.View(),
		"",
		m.filterHint(),
	}, "\n")
}

// Overlay draws the panel over bg.
func (m Model) Overlay(bg string) string {
	return m.panel.Overlay(bg, m.View())
}

// Unmount releases the panel's lease and detaches it.
func (m Model) Unmount() Model {
	m.panel = m.panel.Unmount()
	return m
}
