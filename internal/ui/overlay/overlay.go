// Package overlay composes foreground content on top of a background view
// without clearing the screen. All operations are ANSI-aware so styling in
// both layers survives.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the center of the viewport.
	Center Position = iota
	// Top places the overlay at the top center of the viewport.
	Top
	// Bottom places the overlay at the bottom center of the viewport.
	Bottom
	// BottomLeft places the overlay in the bottom-left corner.
	BottomLeft
	// BottomRight places the overlay in the bottom-right corner.
	BottomRight
)

// Config controls overlay rendering behavior.
type Config struct {
	// Width is the total viewport width.
	Width int
	// Height is the total viewport height.
	Height int
	// Position specifies where to place the overlay.
	Position Position
	// PadX adds horizontal padding from edges (corner positions only).
	PadX int
	// PadY adds vertical padding from edges (Top/Bottom and corner positions).
	PadY int
}

var dimStyle = lipgloss.NewStyle().Faint(true)

// Place renders fg on top of bg at the position described by cfg.
func Place(cfg Config, fg, bg string) string {
	fgWidth := lipgloss.Width(fg)
	fgHeight := lipgloss.Height(fg)
	x, y := calculatePosition(cfg, fgWidth, fgHeight)
	return PlaceAt(x, y, cfg.Width, cfg.Height, fg, bg)
}

// PlaceAt renders fg with its top-left corner at (x, y). x may be negative
// or push fg past the right edge; the parts outside [0, width) are clipped,
// which is how a panel that is partly off-screen is drawn.
func PlaceAt(x, y, width, height int, fg, bg string) string {
	bgLines := padLines(bg, width, height)
	if fg == "" {
		return strings.Join(bgLines, "\n")
	}

	for i, fgLine := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(bgLines) {
			break
		}

		start := x
		line := fgLine
		if start < 0 {
			line = ansi.TruncateLeft(line, -start, "")
			start = 0
		}
		if width > 0 {
			if start >= width {
				continue
			}
			if start+ansi.StringWidth(line) > width {
				line = ansi.Truncate(line, width-start, "")
			}
		}
		lineWidth := ansi.StringWidth(line)
		if lineWidth == 0 {
			continue
		}

		bgLine := bgLines[row]
		leftPart := ansi.Truncate(bgLine, start, "")
		if w := ansi.StringWidth(leftPart); w < start {
			leftPart += strings.Repeat(" ", start-w)
		}

		var rightPart string
		end := start + lineWidth
		if end < ansi.StringWidth(bgLine) {
			rightPart = ansi.TruncateLeft(bgLine, end, "")
		}

		bgLines[row] = leftPart + line + rightPart
	}

	return strings.Join(bgLines, "\n")
}

// Dim strips styling from bg and renders it faint, producing the dim layer
// drawn behind an open panel.
func Dim(bg string, width, height int) string {
	lines := padLines(bg, width, height)
	for i, line := range lines {
		lines[i] = dimStyle.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// padLines splits bg into lines and pads it to height rows.
func padLines(bg string, width, height int) []string {
	lines := strings.Split(bg, "\n")
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", max(width, 0)))
	}
	return lines
}

// calculatePosition determines the x,y starting coordinates for the overlay.
func calculatePosition(cfg Config, fgWidth, fgHeight int) (x, y int) {
	switch cfg.Position {
	case Top:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.PadY
	case Bottom:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.Height - fgHeight - cfg.PadY
	case BottomLeft:
		x = cfg.PadX
		y = cfg.Height - fgHeight - cfg.PadY
	case BottomRight:
		x = cfg.Width - fgWidth - cfg.PadX
		y = cfg.Height - fgHeight - cfg.PadY
	default: // Center
		x = (cfg.Width - fgWidth) / 2
		y = (cfg.Height - fgHeight) / 2
	}

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
