package slideover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		unit  Unit
	}{
		{"450px", 450, UnitPx},
		{" 40vw ", 40, UnitVW},
		{"30%", 30, UnitPercent},
		{"12.5PX", 12.5, UnitPx},
		{"20em", 0, UnitUnknown},
		{"px", 0, UnitUnknown},
		{"-5px", 0, UnitUnknown},
		{"", 0, UnitUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l := ParseLength(tt.in)
			require.Equal(t, tt.unit, l.Unit)
			require.Equal(t, tt.value, l.Value)
		})
	}
}

func TestLength_String(t *testing.T) {
	require.Equal(t, "450px", Px(450).String())
	require.Equal(t, "40vw", VW(40).String())
	require.Equal(t, "20em", ParseLength("20em").String())
}

func TestParseSide(t *testing.T) {
	s, err := ParseSide("LEFT")
	require.NoError(t, err)
	require.Equal(t, SideLeft, s)

	s, err = ParseSide("")
	require.NoError(t, err)
	require.Equal(t, SideRight, s)

	_, err = ParseSide("top")
	require.Error(t, err)
}

func TestConfig_NormalizedFillsDefaults(t *testing.T) {
	c := Config{Side: SideLeft, CloseThreshold: Threshold(3)}.normalized()
	require.Equal(t, SideLeft, c.Side)
	require.Equal(t, Px(FallbackWidthPx), c.Width)
	require.Equal(t, 1.0, c.Threshold())
	require.Equal(t, float64(DefaultFlickVelocity), c.FlickVelocity)
	require.Equal(t, float64(DefaultUnitsPerCell), c.UnitsPerCell)
	require.Equal(t, 250*time.Millisecond, c.Motion.CloseDuration)
	require.Equal(t, 500.0, c.Motion.SnapBack.Stiffness)
}

func TestConfig_NormalizedKeepsZeroThreshold(t *testing.T) {
	c := Config{CloseThreshold: Threshold(0)}.normalized()
	require.NotNil(t, c.CloseThreshold)
	require.Zero(t, c.Threshold())

	require.Equal(t, DefaultCloseThreshold, Config{}.normalized().Threshold())
	require.Zero(t, Config{CloseThreshold: Threshold(-0.5)}.normalized().Threshold())
}

func TestConfig_NormalizedKeepsUnknownWidth(t *testing.T) {
	c := Config{Width: ParseLength("12em")}.normalized()
	require.Equal(t, UnitUnknown, c.Width.Unit)
	require.Equal(t, "12em", c.Width.String())
}
