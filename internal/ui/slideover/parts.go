package slideover

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/sporthub/sporthub/internal/ui/styles"
)

// Zone IDs are namespaced by panel id so several panels can coexist.
func triggerZoneID(id string) string { return "slideover-trigger-" + id }
func closeZoneID(id string) string   { return "slideover-close-" + id }
func handleZoneID(id string) string  { return "slideover-handle-" + id }

func clicked(id string, msg tea.MouseMsg) bool {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return false
	}
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}

// Trigger is a button that toggles the panel.
type Trigger struct {
	ctx   *Context
	label string
}

// NewTrigger builds a trigger for ctx. It panics with ErrNoContext when ctx
// is nil.
func NewTrigger(ctx *Context, label string) Trigger {
	return Trigger{ctx: mustContext(ctx), label: label}
}

// Update toggles the panel when the trigger is clicked.
func (t Trigger) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.MouseMsg); ok && clicked(triggerZoneID(t.ctx.ID()), m) {
		return t.ctx.Toggle()
	}
	return nil
}

// View renders the trigger button.
func (t Trigger) View() string {
	style := styles.PrimaryButtonStyle
	if t.ctx.IsOpen() {
		style = styles.PrimaryButtonFocusedStyle
	}
	return zone.Mark(triggerZoneID(t.ctx.ID()), style.Render(t.label))
}

// Close is a button that closes the panel.
type Close struct {
	ctx *Context
}

// NewClose builds a close button for ctx. It panics with ErrNoContext when
// ctx is nil.
func NewClose(ctx *Context) Close {
	return Close{ctx: mustContext(ctx)}
}

// Update closes the panel when the button is clicked.
func (c Close) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.MouseMsg); ok && clicked(closeZoneID(c.ctx.ID()), m) {
		return c.ctx.SetOpen(false)
	}
	return nil
}

// View renders the close glyph.
func (c Close) View() string {
	return zone.Mark(closeZoneID(c.ctx.ID()), closeStyle.Render("✕"))
}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor)
	descriptionStyle = lipgloss.NewStyle().Foreground(styles.TextDescriptionColor)
	closeStyle       = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	footerStyle      = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	handleStyle      = lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
)

// Title is the panel heading.
type Title struct {
	ctx  *Context
	text string
}

// NewTitle panics with ErrNoContext when ctx is nil.
func NewTitle(ctx *Context, text string) Title {
	return Title{ctx: mustContext(ctx), text: text}
}

// Render truncates the title to width columns.
func (t Title) Render(width int) string {
	return titleStyle.Render(runewidth.Truncate(t.text, max(width, 0), "…"))
}

// Description is secondary text under the title.
type Description struct {
	ctx  *Context
	text string
}

// NewDescription panics with ErrNoContext when ctx is nil.
func NewDescription(ctx *Context, text string) Description {
	return Description{ctx: mustContext(ctx), text: text}
}

// Render wraps the description to width columns.
func (d Description) Render(width int) string {
	if d.text == "" {
		return ""
	}
	return descriptionStyle.Width(max(width, 1)).Render(d.text)
}

// Header lays out a title, an optional description and the close button.
type Header struct {
	ctx         *Context
	title       Title
	description Description
	close       Close
}

// NewHeader panics with ErrNoContext when ctx is nil.
func NewHeader(ctx *Context, title, description string) Header {
	ctx = mustContext(ctx)
	return Header{
		ctx:         ctx,
		title:       NewTitle(ctx, title),
		description: NewDescription(ctx, description),
		close:       NewClose(ctx),
	}
}

// Update forwards clicks to the close button.
func (h Header) Update(msg tea.Msg) tea.Cmd {
	return h.close.Update(msg)
}

// Render lays the header out in width columns.
func (h Header) Render(width int) string {
	closeView := h.close.View()
	titleWidth := width - lipgloss.Width(closeView) - 1
	title := h.title.Render(titleWidth)
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(closeView), 1)
	row := title + strings.Repeat(" ", gap) + closeView

	if desc := h.description.Render(width); desc != "" {
		return lipgloss.JoinVertical(lipgloss.Left, row, desc)
	}
	return row
}

// Footer is a muted line pinned to the bottom of the panel.
type Footer struct {
	ctx  *Context
	text string
}

// NewFooter panics with ErrNoContext when ctx is nil.
func NewFooter(ctx *Context, text string) Footer {
	return Footer{ctx: mustContext(ctx), text: text}
}

// Render truncates the footer to width columns.
func (f Footer) Render(width int) string {
	return footerStyle.Render(runewidth.Truncate(f.text, max(width, 0), "…"))
}

// Handle is the grab indicator drawn on the panel edge nearest its anchor.
type Handle struct {
	ctx *Context
}

// NewHandle panics with ErrNoContext when ctx is nil.
func NewHandle(ctx *Context) Handle {
	return Handle{ctx: mustContext(ctx)}
}

// Render draws a one-column grip of the given height, with the grip marks
// centred vertically.
func (h Handle) Render(height int) string {
	if height <= 0 {
		return ""
	}
	lines := make([]string, height)
	mid := height / 2
	for i := range lines {
		if i >= mid-1 && i <= mid+1 {
			lines[i] = "┃"
		} else {
			lines[i] = " "
		}
	}
	return zone.Mark(handleZoneID(h.ctx.ID()), handleStyle.Render(strings.Join(lines, "\n")))
}
