package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TitledBox draws content in a rounded box of exactly width x height cells
// with title set into the top border: ╭─ Title ───╮. Content that does not
// fit is cut.
func TitledBox(content, title string, width, height int, borderColor lipgloss.TerminalColor) string {
	inner := max(width-2, 1)
	rows := max(height-2, 1)

	border := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(OverlayTitleColor).Bold(true)

	var b strings.Builder
	b.WriteString(topBorder(title, inner, border, titleStyle))

	lines := strings.Split(content, "\n")
	for i := 0; i < rows; i++ {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], inner, "")
		}
		if pad := inner - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString("\n")
		b.WriteString(border.Render("│") + line + border.Render("│"))
	}

	b.WriteString("\n")
	b.WriteString(border.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return b.String()
}

func topBorder(title string, inner int, border, titleStyle lipgloss.Style) string {
	// "─ " + title + " " needs at least four cells around the text.
	if title == "" || inner < 4 {
		return border.Render("╭" + strings.Repeat("─", inner) + "╮")
	}
	title = ansi.Truncate(title, inner-4, "…")
	rest := inner - 3 - ansi.StringWidth(title)
	return border.Render("╭─ ") +
		titleStyle.Render(title) +
		border.Render(" "+strings.Repeat("─", rest)+"╮")
}
