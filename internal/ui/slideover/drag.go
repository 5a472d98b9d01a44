package slideover

import (
	"math"
	"time"
)

// velocityWindow is how far back pointer samples count toward the release
// velocity.
const velocityWindow = 100 * time.Millisecond

type dragSample struct {
	at     time.Time
	offset float64
}

// DragSession tracks one pointer drag of the panel along its sliding axis.
type DragSession struct {
	startX      int
	startOffset float64
	offset      float64
	moved       bool
	samples     []dragSample
}

// BeginDrag starts a session at pointer column x with the panel at offset.
func BeginDrag(x int, offset float64, now time.Time) *DragSession {
	return &DragSession{
		startX:      x,
		startOffset: offset,
		offset:      offset,
		samples:     []dragSample{{at: now, offset: offset}},
	}
}

// Offset returns the clamped drag offset.
func (d *DragSession) Offset() float64 { return d.offset }

// Moved reports whether the pointer has moved since BeginDrag.
func (d *DragSession) Moved() bool { return d.moved }

// Move updates the session for pointer column x and returns the new offset,
// clamped to [lo, hi].
func (d *DragSession) Move(x int, unitsPerCell, lo, hi float64, now time.Time) float64 {
	if unitsPerCell <= 0 {
		unitsPerCell = DefaultUnitsPerCell
	}
	if x != d.startX {
		d.moved = true
	}
	next := d.startOffset + float64(x-d.startX)*unitsPerCell
	d.offset = math.Max(lo, math.Min(hi, next))
	d.samples = append(d.samples, dragSample{at: now, offset: d.offset})
	d.trim(now)
	return d.offset
}

// Velocity estimates the drag speed in px/s over the recent window.
// Positive values point right.
func (d *DragSession) Velocity(now time.Time) float64 {
	d.trim(now)
	if len(d.samples) < 2 {
		return 0
	}
	first, last := d.samples[0], d.samples[len(d.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.offset - first.offset) / dt
}

func (d *DragSession) trim(now time.Time) {
	cutoff := now.Add(-velocityWindow)
	i := 0
	for i < len(d.samples)-1 && d.samples[i].at.Before(cutoff) {
		i++
	}
	d.samples = d.samples[i:]
}

// ShouldClose decides the outcome of a released drag. A right panel closes
// when dragged right past threshold*width or flicked right faster than
// flick; a left panel mirrors that leftwards.
func ShouldClose(side Side, offset, velocity, width, threshold, flick float64) bool {
	limit := width * threshold
	if side == SideLeft {
		return offset < -limit || velocity < -flick
	}
	return offset > limit || velocity > flick
}
