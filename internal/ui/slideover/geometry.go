package slideover

import "math"

// Responsive width policy. Widths are in px; a terminal column is
// Config.UnitsPerCell px wide.
const (
	MobileBreakpointPx = 640
	TabletBreakpointPx = 1024

	mobileWidthFraction = 0.90
	tabletWidthFraction = 0.70
	maxViewportFraction = 0.95

	// FallbackWidthPx is used on desktop when the width unit is unrecognised.
	FallbackWidthPx = 400

	// RestMarginPx keeps the border and shadow column off-screen while closed.
	RestMarginPx = 50
)

// ResolveWidth returns the panel width in px for a viewport of vw px.
// Narrow and tablet viewports ignore the preference; the result never
// exceeds 95% of the viewport.
func ResolveWidth(vw float64, pref Length) float64 {
	if vw <= 0 || math.IsNaN(vw) || math.IsInf(vw, 0) {
		return 0
	}

	var w float64
	switch {
	case vw <= MobileBreakpointPx:
		w = mobileWidthFraction * vw
	case vw <= TabletBreakpointPx:
		w = tabletWidthFraction * vw
	default:
		switch pref.Unit {
		case UnitPx:
			w = pref.Value
		case UnitVW, UnitPercent:
			w = pref.Value / 100 * vw
		default:
			w = FallbackWidthPx
		}
	}

	return math.Min(w, maxViewportFraction*vw)
}

// Geometry is the derived layout snapshot for the current viewport.
// The zero value means no measurement has happened yet.
type Geometry struct {
	ViewportPx float64
	WidthPx    float64
}

// Measure computes the geometry for a viewport of vw px.
func Measure(vw float64, pref Length) Geometry {
	return Geometry{ViewportPx: vw, WidthPx: ResolveWidth(vw, pref)}
}

// Valid reports whether the geometry can be rendered.
func (g Geometry) Valid() bool {
	return g.WidthPx > 0
}

// RestOffset is the closed translation along the sliding axis: negative
// (off the left edge) for left panels, positive for right panels.
func (g Geometry) RestOffset(side Side) float64 {
	off := g.WidthPx + RestMarginPx
	if side == SideLeft {
		return -off
	}
	return off
}

// DragBounds returns the [lo, hi] range a drag offset is clamped to:
// between fully open (0) and the signed rest offset.
func (g Geometry) DragBounds(side Side) (lo, hi float64) {
	rest := g.RestOffset(side)
	if rest < 0 {
		return rest, 0
	}
	return 0, rest
}

// Cells converts a px distance to whole terminal columns.
func Cells(px, unitsPerCell float64) int {
	if unitsPerCell <= 0 {
		unitsPerCell = DefaultUnitsPerCell
	}
	return int(math.Round(px / unitsPerCell))
}
