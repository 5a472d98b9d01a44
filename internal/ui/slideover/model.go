// Package slideover implements a gesture-dismissible panel that slides in
// from the left or right screen edge over a dimmed background.
//
// A panel is made of a shared *Context (the open state), a Model (geometry,
// motion and drag handling) and optional parts built from the same Context
// (Trigger, Header, Close, Footer, Handle). Panels opened at the same time
// share a ScrollLock; each holds a Lease while open.
package slideover

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sporthub/sporthub/internal/log"
	"github.com/sporthub/sporthub/internal/shared"
	"github.com/sporthub/sporthub/internal/ui/styles"
)

// FrameMsg advances the animation of the panel with the matching ID.
type FrameMsg struct {
	ID string
}

// Model is the animated panel.
type Model struct {
	ctx    *Context
	cfg    Config
	lock   *ScrollLock
	lease  *Lease
	clock  shared.Clock
	portal Portal
	handle Handle

	geo     Geometry
	anim    Animator
	drag    *DragSession
	ticking bool
	gone    bool
}

// New creates the panel for ctx. Panels that may be open together must
// share lock; a nil lock gets a private one. New panics with ErrNoContext
// when ctx is nil.
func New(ctx *Context, lock *ScrollLock) Model {
	ctx = mustContext(ctx)
	if lock == nil {
		lock = NewScrollLock()
	}
	return Model{
		ctx:    ctx,
		cfg:    ctx.Config(),
		lock:   lock,
		clock:  shared.RealClock{},
		portal: NewPortal(DefaultRoot),
		handle: NewHandle(ctx),
	}
}

// WithClock replaces the time source.
func (m Model) WithClock(c shared.Clock) Model {
	m.clock = c
	return m
}

// WithRoot draws the panel onto another layer.
func (m Model) WithRoot(root string) Model {
	m.portal = m.portal.Retarget(root)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resize, animation frames, Escape and pointer input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.gone {
		return m, nil
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.portal = m.portal.Resize(msg.Width, msg.Height)
		m = m.measure()

	case FrameMsg:
		if msg.ID != m.ctx.ID() {
			return m, nil
		}
		m.ticking = false
		prev := m.anim.Phase()
		m.anim = m.anim.Tick(m.clock.Now())
		if next := m.anim.Phase(); next != prev {
			log.Debug(log.CatPanel, "motion settled", "panel", m.ctx.ID(), "phase", next)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.lease.OwnsEscape() {
			log.Debug(log.CatPanel, "escape dismiss", "panel", m.ctx.ID())
			cmds = append(cmds, m.ctx.SetOpen(false))
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.handleMouse(msg)
		cmds = append(cmds, cmd)
	}

	m = m.reconcile()
	var frame tea.Cmd
	m, frame = m.frame()
	cmds = append(cmds, frame)
	return m, tea.Batch(cmds...)
}

// measure recomputes geometry from the portal size and configuration.
func (m Model) measure() Model {
	w, _ := m.portal.Size()
	prev := m.geo
	m.geo = Measure(float64(w)*m.cfg.UnitsPerCell, m.cfg.Width)
	if !m.geo.Valid() {
		return m
	}
	rest := m.geo.RestOffset(m.cfg.Side)
	if !prev.Valid() {
		m.anim = NewAnimator(rest)
	} else {
		m.anim = m.anim.Resize(m.clock.Now(), rest, m.cfg.Motion)
	}
	if prev.WidthPx != m.geo.WidthPx {
		log.Debug(log.CatPanel, "panel measured", "panel", m.ctx.ID(),
			"viewport_px", m.geo.ViewportPx, "width_px", m.geo.WidthPx, "rest_px", rest)
	}
	return m
}

// reconcile aligns the lease and the motion with the Context's open state.
func (m Model) reconcile() Model {
	if cfg := m.ctx.Config(); cfg != m.cfg {
		m.cfg = cfg
		m = m.measure()
	}

	open := m.ctx.IsOpen()
	switch {
	case open && !m.lease.Active():
		m.lease = m.lock.Acquire(m.ctx.ID())
		log.Debug(log.CatPanel, "scroll lock acquired", "panel", m.ctx.ID(), "held", m.lock.Held())
	case !open && m.lease.Active():
		m.lease.Release()
		log.Debug(log.CatPanel, "scroll lock released", "panel", m.ctx.ID(), "held", m.lock.Held())
	}

	if !m.geo.Valid() {
		return m
	}
	now := m.clock.Now()
	phase := m.anim.Phase()
	switch {
	case open && !phase.Shown():
		m.anim = m.anim.Open(now, m.cfg.Motion)
	case !open && phase.Shown():
		m.drag = nil
		m.anim = m.anim.Close(now, m.geo.RestOffset(m.cfg.Side), m.cfg.Motion)
	}
	return m
}

// frame schedules the next animation frame if one is needed and none is
// already pending.
func (m Model) frame() (Model, tea.Cmd) {
	if m.ticking || !m.anim.Animating() {
		return m, nil
	}
	m.ticking = true
	id := m.ctx.ID()
	fps := m.cfg.Motion.FPS
	return m, tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.geo.Valid() {
		return m, nil
	}
	now := m.clock.Now()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.anim.Phase().Shown() {
			return m, nil
		}
		if m.hit(msg) {
			m.drag = BeginDrag(msg.X, m.anim.Offset(), now)
			return m, nil
		}
		log.Debug(log.CatPanel, "overlay dismiss", "panel", m.ctx.ID(), "x", msg.X, "y", msg.Y)
		return m, m.ctx.SetOpen(false)

	case tea.MouseActionMotion:
		if m.drag == nil {
			return m, nil
		}
		m.anim = m.dragTo(msg.X, now)

	case tea.MouseActionRelease:
		drag := m.drag
		if drag == nil {
			return m, nil
		}
		// Terminals may coalesce motion, so the release column counts too.
		m.anim = m.dragTo(msg.X, now)
		m.drag = nil
		if m.anim.Phase() != PhaseDragging {
			return m, nil
		}
		return m.release(drag, now)
	}
	return m, nil
}

// dragTo moves the active drag to pointer column x and returns the
// animator following it. A drag that has not left its start column leaves
// the animator alone.
func (m Model) dragTo(x int, now time.Time) Animator {
	lo, hi := m.geo.DragBounds(m.cfg.Side)
	off := m.drag.Move(x, m.cfg.UnitsPerCell, lo, hi, now)
	if !m.drag.Moved() {
		return m.anim
	}
	anim := m.anim
	if anim.Phase() != PhaseDragging {
		anim = anim.BeginDrag()
	}
	return anim.DragTo(off)
}

// release decides between dismissal and snap-back for a finished drag.
func (m Model) release(drag *DragSession, now time.Time) (Model, tea.Cmd) {
	off, vel := drag.Offset(), drag.Velocity(now)
	if ShouldClose(m.cfg.Side, off, vel, m.geo.WidthPx, m.cfg.Threshold(), m.cfg.FlickVelocity) {
		log.Debug(log.CatPanel, "drag dismiss", "panel", m.ctx.ID(), "offset", off, "velocity", vel)
		cmd := m.ctx.SetOpen(false)
		if m.ctx.IsOpen() {
			// The consumer owns the state and has not closed yet.
			m.anim = m.anim.SnapBack(now, vel, m.cfg.Motion)
		}
		return m, cmd
	}
	log.Debug(log.CatPanel, "drag snap back", "panel", m.ctx.ID(), "offset", off, "velocity", vel)
	m.anim = m.anim.SnapBack(now, vel, m.cfg.Motion)
	return m, nil
}

// hit reports whether a pointer event lands on the panel.
func (m Model) hit(msg tea.MouseMsg) bool {
	if z := zone.Get(handleZoneID(m.ctx.ID())); z != nil && z.InBounds(msg) {
		return true
	}
	w, _ := m.portal.Size()
	cells := m.panelCells()
	x0 := m.column(m.anim.Offset())
	return msg.X >= max(x0, 0) && msg.X < min(x0+cells, w)
}

func (m Model) panelCells() int {
	w, _ := m.portal.Size()
	return min(Cells(m.geo.WidthPx, m.cfg.UnitsPerCell), w)
}

// column maps an offset in px to the panel's leftmost screen column.
func (m Model) column(offset float64) int {
	off := Cells(offset, m.cfg.UnitsPerCell)
	if m.cfg.Side == SideLeft {
		return off
	}
	w, _ := m.portal.Size()
	return w - m.panelCells() + off
}

// Unmount releases the lease and detaches the portal. The model ignores
// all messages afterwards.
func (m Model) Unmount() Model {
	m.lease.Release()
	if m.lease != nil {
		log.Debug(log.CatPanel, "unmounted", "panel", m.ctx.ID(), "held", m.lock.Held())
	}
	m.lease = nil
	m.drag = nil
	m.ticking = false
	m.portal = m.portal.Detach()
	if m.geo.Valid() {
		m.anim = NewAnimator(m.geo.RestOffset(m.cfg.Side))
	}
	m.gone = true
	return m
}

// Context returns the panel's state container.
func (m Model) Context() *Context { return m.ctx }

// Phase returns the motion phase.
func (m Model) Phase() Phase { return m.anim.Phase() }

// Offset returns the current translation in px.
func (m Model) Offset() float64 { return m.anim.Offset() }

// Geometry returns the last measurement.
func (m Model) Geometry() Geometry { return m.geo }

// Locked reports whether this panel holds a scroll lock lease.
func (m Model) Locked() bool { return m.lease.Active() }

// Visible reports whether anything is drawn.
func (m Model) Visible() bool {
	return m.portal.Attached() && m.geo.Valid() && m.anim.Phase() != PhaseClosed
}

// WantsKeys reports whether keyboard input should go to the panel content.
func (m Model) WantsKeys() bool {
	return m.anim.Phase().Shown()
}

// WantsMouse reports whether pointer input should go to the panel rather
// than the background. The overlay is inert while closed or closing.
func (m Model) WantsMouse() bool {
	return m.anim.Phase().Shown() || m.drag != nil
}

// InnerSize is the content area in cells.
func (m Model) InnerSize() (width, height int) {
	_, h := m.portal.Size()
	return max(m.panelCells()-4, 0), max(h, 0)
}

var panelStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(styles.OverlayBorderColor).
	Padding(0, 1)

// Overlay draws the panel holding content over bg.
func (m Model) Overlay(bg, content string) string {
	if !m.Visible() {
		return bg
	}
	return m.portal.Render(bg, m.render(content), m.column(m.anim.Offset()), true)
}

func (m Model) render(content string) string {
	_, h := m.portal.Size()
	inner, _ := m.InnerSize()

	style := panelStyle.
		Width(inner + 2).
		Height(h).
		MaxHeight(h).
		BorderTop(false).
		BorderBottom(false)

	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	body := lipgloss.NewStyle().MaxWidth(inner).Render(strings.Join(lines, "\n"))
	handle := m.handle.Render(h)

	if m.cfg.Side == SideLeft {
		box := style.BorderLeft(false).BorderRight(true).Render(body)
		return lipgloss.JoinHorizontal(lipgloss.Top, handle, box)
	}
	box := style.BorderLeft(true).BorderRight(false).Render(body)
	return lipgloss.JoinHorizontal(lipgloss.Top, box, handle)
}
