package slideover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestShouldClose_RightPanelThresholds(t *testing.T) {
	const width, threshold, flick = 400, 0.3, 800
	tests := []struct {
		name     string
		offset   float64
		velocity float64
		want     bool
	}{
		{"past threshold", 121, 0, true},
		{"short of threshold", 119, 0, false},
		{"flick", 0, 801, true},
		{"slow flick", 0, 799, false},
		{"long slow drag", 150, 0, true},
		{"leftward flick", 0, -2000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ShouldClose(SideRight, tt.offset, tt.velocity, width, threshold, flick))
		})
	}
}

func TestShouldClose_LeftPanelMirrors(t *testing.T) {
	require.True(t, ShouldClose(SideLeft, -136, 0, 450, 0.3, 800))
	require.False(t, ShouldClose(SideLeft, -134, 0, 450, 0.3, 800))
	require.True(t, ShouldClose(SideLeft, 0, -801, 450, 0.3, 800))
	require.False(t, ShouldClose(SideLeft, 0, 801, 450, 0.3, 800))
	require.False(t, ShouldClose(SideLeft, 200, 0, 450, 0.3, 800))
}

func TestProperty_SidesAreMirrorImages(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		width := rapid.Float64Range(1, 2000).Draw(rt, "width")
		threshold := rapid.Float64Range(0, 1).Draw(rt, "threshold")
		offset := rapid.Float64Range(-3000, 3000).Draw(rt, "offset")
		velocity := rapid.Float64Range(-5000, 5000).Draw(rt, "velocity")

		right := ShouldClose(SideRight, offset, velocity, width, threshold, 800)
		left := ShouldClose(SideLeft, -offset, -velocity, width, threshold, 800)
		require.Equal(rt, right, left)
	})
}

func TestDragSession_ClampsToBounds(t *testing.T) {
	now := time.Unix(0, 0)
	d := BeginDrag(10, 0, now)
	require.False(t, d.Moved())

	off := d.Move(20, 8, 0, 450, now.Add(10*time.Millisecond))
	require.Equal(t, 80.0, off)
	require.True(t, d.Moved())

	off = d.Move(0, 8, 0, 450, now.Add(20*time.Millisecond))
	require.Equal(t, 0.0, off, "cannot drag past fully open")

	off = d.Move(200, 8, 0, 450, now.Add(30*time.Millisecond))
	require.Equal(t, 450.0, off, "cannot drag past rest")
}

func TestDragSession_Velocity(t *testing.T) {
	now := time.Unix(0, 0)
	d := BeginDrag(0, 0, now)
	d.Move(5, 8, 0, 1000, now.Add(25*time.Millisecond))
	d.Move(10, 8, 0, 1000, now.Add(50*time.Millisecond))
	require.InDelta(t, 1600, d.Velocity(now.Add(50*time.Millisecond)), 1e-6)
}

func TestDragSession_VelocityDecaysWhenHeld(t *testing.T) {
	now := time.Unix(0, 0)
	d := BeginDrag(0, 0, now)
	d.Move(19, 8, 0, 1000, now.Add(10*time.Millisecond))
	require.Zero(t, d.Velocity(now.Add(time.Second)), "a paused pointer releases at rest")
}

func TestProperty_DragOffsetStaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rest := rapid.Float64Range(1, 2000).Draw(rt, "rest")
		left := rapid.Bool().Draw(rt, "left")
		lo, hi := 0.0, rest
		if left {
			lo, hi = -rest, 0
		}
		now := time.Unix(0, 0)
		d := BeginDrag(0, 0, now)
		for i, x := range rapid.SliceOfN(rapid.IntRange(-500, 500), 1, 20).Draw(rt, "xs") {
			off := d.Move(x, 8, lo, hi, now.Add(time.Duration(i)*time.Millisecond))
			require.GreaterOrEqual(rt, off, lo)
			require.LessOrEqual(rt, off, hi)
		}
	})
}
