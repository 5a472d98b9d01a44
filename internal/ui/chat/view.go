package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/sporthub/sporthub/internal/ui/slideover"
	"github.com/sporthub/sporthub/internal/ui/styles"
)

const keyFormText = "Paste an API key for an OpenAI-compatible service. It is saved to your sporthub config file."

func (m Model) header() slideover.Header {
	desc := "Connect an assistant"
	if m.provider != nil {
		desc = m.provider.Name()
		if m.cfg.Model != "" {
			desc += " · " + m.cfg.Model
		}
	}
	return slideover.NewHeader(m.ctx, "Assistant", desc)
}

func (m Model) footer() slideover.Footer {
	if m.Mode() == ModeAPIKey {
		return slideover.NewFooter(m.ctx, "enter save · esc close")
	}
	return slideover.NewFooter(m.ctx, "enter send · ctrl+y copy · ctrl+k key · esc close")
}

// layout sizes the inputs and viewport to the panel's inner area.
func (m Model) layout() Model {
	m.width, m.height = m.panel.InnerSize()
	if m.width <= 0 || m.height <= 0 {
		return m
	}

	headerHeight := lipgloss.Height(m.header().Render(m.width))
	// header, blank line, body, footer
	m.bodyHeight = max(m.height-headerHeight-2, 1)

	// The thread body ends with a blank line and the prompt.
	m.viewport.Width = m.width
	m.viewport.Height = max(m.bodyHeight-2, 1)
	m.input.Width = max(m.width-lipgloss.Width(m.input.Prompt)-1, 1)
	m.keyInput.Width = max(m.width-lipgloss.Width(m.keyInput.Prompt)-1, 1)
	return m.refresh()
}

// refresh re-renders the thread into the viewport, following the bottom
// when it was already there.
func (m Model) refresh() Model {
	if m.width <= 0 {
		return m
	}
	follow := m.viewport.AtBottom() || m.viewport.TotalLineCount() == 0
	md := m.deps.Markdown
	if m.deps.PlainReplies {
		md = nil
	}
	m.viewport.SetContent(renderThread(context.Background(), m.messages, m.width, md))
	if follow || m.pending != "" {
		m.viewport.GotoBottom()
	}
	return m
}

func (m Model) body() string {
	if m.Mode() == ModeAPIKey {
		text := lipgloss.NewStyle().Foreground(styles.TextDescriptionColor).Render(wordwrap.String(keyFormText, m.width))
		return lipgloss.NewStyle().Height(m.bodyHeight).Render(text + "\n\n" + m.keyInput.View())
	}

	prompt := m.input.View()
	if m.pending != "" {
		prompt = m.spinner.View() + " " + styles.HintStyle.Render("thinking…")
	}
	return strings.Join([]string{m.viewport.View(), "", prompt}, "\n")
}

// View renders the panel content (without the panel chrome).
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	return strings.Join([]string{
		m.header().Render(m.width),
		"",
		m.body(),
		m.footer().Render(m.width),
	}, "\n")
}

// Overlay draws the panel over bg.
func (m Model) Overlay(bg string) string {
	return m.panel.Overlay(bg, m.View())
}

// TriggerView renders the floating button that opens the panel.
func (m Model) TriggerView() string {
	return m.trigger.View()
}
