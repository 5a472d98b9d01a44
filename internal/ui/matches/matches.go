// Package matches contains the scrollable fixtures board drawn behind the
// panels.
package matches

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sporthub/sporthub/internal/keys"
	"github.com/sporthub/sporthub/internal/ui/slideover"
	"github.com/sporthub/sporthub/internal/ui/styles"
)

// Model is the board. It scrolls by whole lines and ignores scrolling
// while any panel holds the scroll lock.
type Model struct {
	matches []Match
	lines   []string
	lock    *slideover.ScrollLock
	keys    keys.KeyMap

	offset int
	width  int
	height int
}

// New creates a board over matches.
func New(matches []Match, lock *slideover.ScrollLock) Model {
	m := Model{
		matches: matches,
		lock:    lock,
		keys:    keys.DefaultKeyMap(),
	}
	m.lines = renderLines(matches)
	return m
}

// SetSize updates dimensions and keeps the offset in range.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.offset = min(m.offset, m.maxOffset())
	return m
}

// Restyle re-renders the lines with the current palette.
func (m Model) Restyle() Model {
	m.lines = renderLines(m.matches)
	return m
}

// Offset returns the index of the first visible line.
func (m Model) Offset() int { return m.offset }

// Update handles scrolling keys and the mouse wheel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.lock != nil && m.lock.Locked() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m = m.scroll(-1)
		case key.Matches(msg, m.keys.Down):
			m = m.scroll(1)
		case key.Matches(msg, m.keys.PageUp):
			m = m.scroll(-m.rows())
		case key.Matches(msg, m.keys.PageDown):
			m = m.scroll(m.rows())
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m = m.scroll(-3)
		case tea.MouseButtonWheelDown:
			m = m.scroll(3)
		}
	}
	return m, nil
}

func (m Model) scroll(delta int) Model {
	m.offset = max(min(m.offset+delta, m.maxOffset()), 0)
	return m
}

// rows is the number of content lines inside the border.
func (m Model) rows() int {
	return max(m.height-2, 1)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.rows(), 0)
}

// View renders the board at its full size.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	end := min(m.offset+m.rows(), len(m.lines))
	content := strings.Join(m.lines[m.offset:end], "\n")

	live := 0
	for _, match := range m.matches {
		if match.Status == StatusLive {
			live++
		}
	}
	title := fmt.Sprintf("Matches (%d live)", live)
	return styles.TitledBox(content, title, m.width, m.height, styles.BorderDefaultColor)
}

type lineStyles struct {
	competition, team, score, live, finished, upcoming lipgloss.Style
}

// currentStyles reads the palette at call time so theme changes apply on
// the next Restyle.
func currentStyles() lineStyles {
	return lineStyles{
		competition: lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Bold(true),
		team:        lipgloss.NewStyle().Foreground(styles.TextPrimaryColor),
		score:       lipgloss.NewStyle().Foreground(styles.MatchScoreColor).Bold(true),
		live:        lipgloss.NewStyle().Foreground(styles.MatchLiveColor).Bold(true),
		finished:    lipgloss.NewStyle().Foreground(styles.MatchFinishedColor),
		upcoming:    lipgloss.NewStyle().Foreground(styles.MatchUpcomingColor),
	}
}

// renderLines lays out the fixtures grouped by competition, in input order.
func renderLines(matches []Match) []string {
	st := currentStyles()
	var lines []string
	current := ""
	for _, match := range matches {
		if match.Competition != current {
			if current != "" {
				lines = append(lines, "")
			}
			current = match.Competition
			lines = append(lines, " "+st.competition.Render(current))
		}
		lines = append(lines, renderMatch(st, match))
	}
	return lines
}

func renderMatch(st lineStyles, match Match) string {
	var badge, score string
	switch match.Status {
	case StatusLive:
		badge = st.live.Render(fmt.Sprintf("%-6s", fmt.Sprintf("%d'", match.Minute)))
		score = st.score.Render(fmt.Sprintf("%d - %d", match.HomeScore, match.AwayScore))
	case StatusFinished:
		badge = st.finished.Render(fmt.Sprintf("%-6s", "FT"))
		score = st.finished.Render(fmt.Sprintf("%d - %d", match.HomeScore, match.AwayScore))
	default:
		badge = st.upcoming.Render(fmt.Sprintf("%-6s", match.Kickoff))
		score = st.upcoming.Render("  v  ")
	}
	home := st.team.Render(fmt.Sprintf("%16s", match.Home))
	away := st.team.Render(match.Away)
	return fmt.Sprintf("   %s %s  %s  %s", badge, home, score, away)
}
