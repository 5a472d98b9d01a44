package slideover

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Side is the screen edge a panel is anchored to and slides from.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// ParseSide parses "left" or "right". Empty input means right.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return SideRight, nil
	case "left":
		return SideLeft, nil
	default:
		return SideRight, fmt.Errorf("invalid side %q (must be \"left\" or \"right\")", s)
	}
}

// Unit is the unit of a configured width.
type Unit int

const (
	UnitUnknown Unit = iota
	UnitPx
	UnitVW      // percentage of the viewport width, "40vw"
	UnitPercent // percentage of the viewport width, "40%"
)

// Length is a width preference such as "450px", "40vw" or "30%".
type Length struct {
	Value float64
	Unit  Unit
	raw   string
}

// Px returns an absolute pixel length.
func Px(v float64) Length { return Length{Value: v, Unit: UnitPx, raw: formatFloat(v) + "px"} }

// VW returns a viewport-relative length.
func VW(v float64) Length { return Length{Value: v, Unit: UnitVW, raw: formatFloat(v) + "vw"} }

// ParseLength parses a width preference. It never fails: input with a
// missing or unrecognised unit yields UnitUnknown, which resolves to the
// fixed fallback width.
func ParseLength(s string) Length {
	raw := strings.TrimSpace(s)
	l := Length{raw: raw}

	var num string
	switch lower := strings.ToLower(raw); {
	case strings.HasSuffix(lower, "px"):
		num, l.Unit = raw[:len(raw)-2], UnitPx
	case strings.HasSuffix(lower, "vw"):
		num, l.Unit = raw[:len(raw)-2], UnitVW
	case strings.HasSuffix(lower, "%"):
		num, l.Unit = raw[:len(raw)-1], UnitPercent
	default:
		return l
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || v < 0 {
		return Length{raw: raw}
	}
	l.Value = v
	return l
}

func (l Length) String() string {
	if l.raw != "" {
		return l.raw
	}
	return formatFloat(l.Value)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Spring tunes a damped spring motion.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// MotionConfig tunes the panel's open, close and snap-back motions.
type MotionConfig struct {
	Open          Spring
	SnapBack      Spring
	CloseDuration time.Duration
	FPS           int
}

// Config is the per-instance panel configuration. It has no internal
// mutation path; consumers replace it wholesale via Context.SetConfig.
type Config struct {
	Side           Side
	Width          Length
	CloseThreshold *float64 // fraction of the panel width, in [0, 1]; nil means default
	FlickVelocity  float64  // release speed in px/s that dismisses regardless of distance
	UnitsPerCell   float64  // px represented by one terminal column
	Motion         MotionConfig
}

const (
	DefaultCloseThreshold = 0.3
	DefaultFlickVelocity  = 800
	DefaultUnitsPerCell   = 8
	DefaultFPS            = 60
)

// DefaultMotion returns the default motion tuning.
func DefaultMotion() MotionConfig {
	return MotionConfig{
		Open:          Spring{Stiffness: 300, Damping: 30, Mass: 1},
		SnapBack:      Spring{Stiffness: 500, Damping: 40, Mass: 1},
		CloseDuration: 250 * time.Millisecond,
		FPS:           DefaultFPS,
	}
}

// DefaultConfig returns a right-anchored 400px panel.
func DefaultConfig() Config {
	return Config{
		Side:           SideRight,
		Width:          Px(FallbackWidthPx),
		CloseThreshold: Threshold(DefaultCloseThreshold),
		FlickVelocity:  DefaultFlickVelocity,
		UnitsPerCell:   DefaultUnitsPerCell,
		Motion:         DefaultMotion(),
	}
}

// Threshold returns a close threshold for Config.CloseThreshold.
func Threshold(fraction float64) *float64 {
	return &fraction
}

// Threshold returns the close threshold, or the default when unset.
func (c Config) Threshold() float64 {
	if c.CloseThreshold == nil {
		return DefaultCloseThreshold
	}
	return *c.CloseThreshold
}

// normalized fills zero values with defaults and clamps the threshold to
// [0, 1]. An explicit zero threshold is kept: any drag then dismisses.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Width.Unit == UnitUnknown && c.Width.raw == "" {
		c.Width = d.Width
	}
	c.CloseThreshold = Threshold(min(max(c.Threshold(), 0), 1))
	if c.FlickVelocity <= 0 {
		c.FlickVelocity = d.FlickVelocity
	}
	if c.UnitsPerCell <= 0 {
		c.UnitsPerCell = d.UnitsPerCell
	}
	if c.Motion.Open.Stiffness <= 0 {
		c.Motion.Open = d.Motion.Open
	}
	if c.Motion.SnapBack.Stiffness <= 0 {
		c.Motion.SnapBack = d.Motion.SnapBack
	}
	if c.Motion.CloseDuration <= 0 {
		c.Motion.CloseDuration = d.Motion.CloseDuration
	}
	if c.Motion.FPS <= 0 {
		c.Motion.FPS = d.Motion.FPS
	}
	return c
}

// Options is the consumer contract for one panel instance.
type Options struct {
	// Open enables controlled mode when non-nil: the panel follows *Open and
	// reports requested transitions through OnOpenChange only.
	Open *bool

	// OnOpenChange is invoked with every requested open state.
	OnOpenChange func(open bool) tea.Cmd

	// DefaultOpen is the initial state in uncontrolled mode.
	DefaultOpen bool

	Config Config
}
