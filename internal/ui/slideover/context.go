package slideover

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sporthub/sporthub/internal/log"
)

// ErrNoContext is raised when a panel part is built without a Context.
var ErrNoContext = errors.New("slideover: part used outside of a panel context")

// OpenChangedMsg tells the panel with the matching ID to reconcile with its
// Context after an open-state request.
type OpenChangedMsg struct {
	ID   string
	Open bool
}

// Context is the state container shared by one panel and all its parts. It
// is the single source of truth for openness.
//
// In controlled mode the consumer owns the flag: SetOpen only reports the
// request through OnOpenChange and the consumer answers with SetControlled.
// In uncontrolled mode SetOpen also flips the local flag.
type Context struct {
	id           string
	controlled   bool
	external     bool
	local        bool
	onOpenChange func(open bool) tea.Cmd
	cfg          Config
}

// NewContext creates the state container for panel id.
func NewContext(id string, opts Options) *Context {
	c := &Context{
		id:           id,
		local:        opts.DefaultOpen,
		onOpenChange: opts.OnOpenChange,
	}
	if opts.Open != nil {
		c.controlled = true
		c.external = *opts.Open
	}
	c.SetConfig(opts.Config)
	return c
}

// ID returns the panel id.
func (c *Context) ID() string { return c.id }

// IsOpen reports the authoritative open state.
func (c *Context) IsOpen() bool {
	if c.controlled {
		return c.external
	}
	return c.local
}

// Controlled reports whether the consumer owns the open state.
func (c *Context) Controlled() bool { return c.controlled }

// SetOpen requests an open-state change.
func (c *Context) SetOpen(next bool) tea.Cmd {
	var requested tea.Cmd
	if c.onOpenChange != nil {
		requested = c.onOpenChange(next)
	}
	if !c.controlled {
		c.local = next
	}
	open := c.IsOpen()
	id := c.id
	reconcile := func() tea.Msg { return OpenChangedMsg{ID: id, Open: open} }
	if requested == nil {
		return reconcile
	}
	return tea.Batch(requested, reconcile)
}

// Toggle requests the opposite of the current state.
func (c *Context) Toggle() tea.Cmd {
	return c.SetOpen(!c.IsOpen())
}

// SetControlled feeds the consumer-owned flag and switches to controlled
// mode.
func (c *Context) SetControlled(open bool) tea.Cmd {
	c.controlled = true
	c.external = open
	id := c.id
	return func() tea.Msg { return OpenChangedMsg{ID: id, Open: open} }
}

// Config returns the current panel configuration.
func (c *Context) Config() Config { return c.cfg }

// SetConfig replaces the configuration wholesale.
func (c *Context) SetConfig(cfg Config) {
	c.cfg = cfg.normalized()
	if c.cfg.Width.Unit == UnitUnknown {
		log.Debug(log.CatPanel, "unrecognised width, using fallback", "panel", c.id, "width", c.cfg.Width.String(), "fallback_px", FallbackWidthPx)
	}
}

// mustContext panics with ErrNoContext when c is nil.
func mustContext(c *Context) *Context {
	if c == nil {
		panic(ErrNoContext)
	}
	return c
}
