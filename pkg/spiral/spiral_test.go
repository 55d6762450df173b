package spiral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounces(t *testing.T) {
	tests := []struct {
		name    string
		minutes float64
		want    int
	}{
		{"ReferenceBattery", 10, 5},
		{"TwentyMinutes", 20, 8},
		{"ClampCeiling", 1000, 12},
		{"ClampFloor", -1000, 3},
		{"RoundsHalfUp", 15, 7}, // 5 + 0.3*5 = 6.5
		{"Zero", 0, 3},          // 5 - 3 = 2, clamped
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bounces(tt.minutes))
		})
	}
}

func TestHoldRadius(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 1595, cfg.HoldRadius(10), 1e-9)
	assert.InDelta(t, 3190, cfg.HoldRadius(20), 1e-9)
	assert.InDelta(t, 159.5, cfg.HoldRadius(1), 1e-9)
}

func TestDensityFractions(t *testing.T) {
	assert.Len(t, densityFractions(1), 5)
	assert.Len(t, densityFractions(2), 2)
	assert.Equal(t, []float64{0.5}, densityFractions(3))
	assert.Equal(t, []float64{0.5}, densityFractions(12))
}

func TestQuantileSuffix(t *testing.T) {
	assert.Equal(t, "", quantileSuffix(0.5, false))
	assert.Equal(t, "_q33", quantileSuffix(1.0/3, true))
	assert.Equal(t, "_q67", quantileSuffix(2.0/3, true))
	assert.Equal(t, "_q17", quantileSuffix(1.0/6, true))
}

func TestCurveRadiusCaps(t *testing.T) {
	// Primary waypoints cap early: base 40, scale 0.05, max 160.
	assert.InDelta(t, 47.5, curveRadius(150, false), 1e-9)
	assert.InDelta(t, 160, curveRadius(1e6, false), 1e-9)

	// Midpoints scale hard with distance and cap at 1500.
	assert.InDelta(t, 230, curveRadius(150, true), 1e-9)
	assert.InDelta(t, 1500, curveRadius(5000, true), 1e-9)
}
