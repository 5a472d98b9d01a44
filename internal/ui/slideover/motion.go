package slideover

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Phase is the panel's animation state.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Shown reports whether the panel is on screen or heading there.
func (p Phase) Shown() bool {
	return p == PhaseOpening || p == PhaseOpen || p == PhaseDragging
}

const (
	settlePx       = 0.5
	settleVelocity = 5.0 // px/s
	maxSpringTime  = 3 * time.Second
)

type motionKind int

const (
	motionHold motionKind = iota
	motionSpring
	motionTween
)

// Motion describes one movement of the panel offset over time. It is a
// value; At is a pure function of elapsed time.
type Motion struct {
	kind     motionKind
	from     float64
	to       float64
	velocity float64
	spring   Spring
	duration time.Duration
	fps      int
}

// Hold is a motion that stays at offset.
func Hold(offset float64) Motion {
	return Motion{kind: motionHold, from: offset, to: offset}
}

// SpringTo moves from -> to with a damped spring, starting at velocity px/s.
func SpringTo(from, to, velocity float64, s Spring, fps int) Motion {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Motion{kind: motionSpring, from: from, to: to, velocity: velocity, spring: s, fps: fps}
}

// TweenTo moves from -> to over d with an ease-out curve.
func TweenTo(from, to float64, d time.Duration) Motion {
	return Motion{kind: motionTween, from: from, to: to, duration: d}
}

// Target is the offset the motion settles at.
func (m Motion) Target() float64 { return m.to }

// At returns the offset after elapsed and whether the motion has settled.
func (m Motion) At(elapsed time.Duration) (float64, bool) {
	switch m.kind {
	case motionSpring:
		return m.springAt(elapsed)
	case motionTween:
		if m.duration <= 0 || elapsed >= m.duration {
			return m.to, true
		}
		if elapsed <= 0 {
			return m.from, false
		}
		p := float64(elapsed) / float64(m.duration)
		return m.from + (m.to-m.from)*easeOutCubic(p), false
	default:
		return m.to, true
	}
}

// springAt integrates the spring at a fixed frame rate from the start of
// the motion, so the result depends only on elapsed.
func (m Motion) springAt(elapsed time.Duration) (float64, bool) {
	omega, zeta := springParams(m.spring)
	sp := harmonica.NewSpring(harmonica.FPS(m.fps), omega, zeta)

	pos, vel := m.from, m.velocity
	if settled(pos, vel, m.to) {
		return m.to, true
	}

	frames := int(elapsed.Seconds() * float64(m.fps))
	maxFrames := int(maxSpringTime.Seconds() * float64(m.fps))
	for i := 0; i < frames; i++ {
		pos, vel = sp.Update(pos, vel, m.to)
		if settled(pos, vel, m.to) {
			return m.to, true
		}
		if i+1 >= maxFrames {
			return m.to, true
		}
	}
	return pos, false
}

func settled(pos, vel, target float64) bool {
	return math.Abs(pos-target) < settlePx && math.Abs(vel) < settleVelocity
}

// springParams converts stiffness/damping/mass into the angular frequency
// and damping ratio harmonica expects.
func springParams(s Spring) (omega, zeta float64) {
	mass := s.Mass
	if mass <= 0 {
		mass = 1
	}
	omega = math.Sqrt(s.Stiffness / mass)
	zeta = s.Damping / (2 * math.Sqrt(s.Stiffness*mass))
	return omega, zeta
}

func easeOutCubic(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	return 1 - math.Pow(1-p, 3)
}

// RenderedOffset maps the animation state to the offset drawn on screen.
func RenderedOffset(phase Phase, m Motion, elapsed time.Duration, dragOffset float64) float64 {
	switch phase {
	case PhaseDragging:
		return dragOffset
	case PhaseOpen:
		return 0
	case PhaseOpening, PhaseClosing:
		off, _ := m.At(elapsed)
		return off
	default:
		return m.Target()
	}
}

// Animator is the panel's motion state machine:
//
//	closed --Open--> opening --settle--> open
//	open/opening --BeginDrag--> dragging --Release--> opening (snap back) | closing
//	open/opening/dragging --Close--> closing --settle--> closed
type Animator struct {
	phase   Phase
	motion  Motion
	started time.Time
	offset  float64
}

// NewAnimator returns a closed animator resting at rest.
func NewAnimator(rest float64) Animator {
	return Animator{phase: PhaseClosed, motion: Hold(rest), offset: rest}
}

// Phase returns the current state.
func (a Animator) Phase() Phase { return a.phase }

// Offset returns the offset as of the last Tick or transition.
func (a Animator) Offset() float64 { return a.offset }

// Animating reports whether frames are needed.
func (a Animator) Animating() bool {
	return a.phase == PhaseOpening || a.phase == PhaseClosing
}

// Open springs from the current offset to 0.
func (a Animator) Open(now time.Time, cfg MotionConfig) Animator {
	a.phase = PhaseOpening
	a.motion = SpringTo(a.offset, 0, 0, cfg.Open, cfg.FPS)
	a.started = now
	return a
}

// SnapBack returns a released drag to 0 with the stiffer spring, carrying
// the release velocity.
func (a Animator) SnapBack(now time.Time, velocity float64, cfg MotionConfig) Animator {
	a.phase = PhaseOpening
	a.motion = SpringTo(a.offset, 0, velocity, cfg.SnapBack, cfg.FPS)
	a.started = now
	return a
}

// Close tweens from the current offset to rest.
func (a Animator) Close(now time.Time, rest float64, cfg MotionConfig) Animator {
	a.phase = PhaseClosing
	a.motion = TweenTo(a.offset, rest, cfg.CloseDuration)
	a.started = now
	return a
}

// BeginDrag freezes the panel at its current offset under the pointer.
func (a Animator) BeginDrag() Animator {
	a.phase = PhaseDragging
	a.motion = Hold(a.offset)
	return a
}

// DragTo moves the panel to offset while dragging.
func (a Animator) DragTo(offset float64) Animator {
	if a.phase != PhaseDragging {
		return a
	}
	a.offset = offset
	a.motion = Hold(offset)
	return a
}

// Tick advances the motion to now, settling into open or closed.
func (a Animator) Tick(now time.Time) Animator {
	if !a.Animating() {
		return a
	}
	off, done := a.motion.At(now.Sub(a.started))
	a.offset = off
	if done {
		if a.phase == PhaseOpening {
			a.phase = PhaseOpen
			a.offset = 0
		} else {
			a.phase = PhaseClosed
			a.offset = a.motion.Target()
		}
		a.motion = Hold(a.offset)
	}
	return a
}

// Resize re-anchors the animator after the rest offset changed.
func (a Animator) Resize(now time.Time, rest float64, cfg MotionConfig) Animator {
	switch a.phase {
	case PhaseClosed:
		a.offset = rest
		a.motion = Hold(rest)
	case PhaseClosing:
		a = a.Close(now, rest, cfg)
	case PhaseDragging:
		lo, hi := 0.0, rest
		if rest < 0 {
			lo, hi = rest, 0
		}
		a.offset = math.Max(lo, math.Min(hi, a.offset))
		a.motion = Hold(a.offset)
	}
	return a
}
