package mission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		params    FlightParams
		wantField string
	}{
		{"Valid", FlightParams{Slices: 1, BatteryDurationMinutes: 10, MinHeight: 120}, ""},
		{"ValidWithCeiling", FlightParams{Slices: 4, BatteryDurationMinutes: 22.5, MinHeight: 120, MaxHeight: floatPtr(400)}, ""},
		{"ZeroSlices", FlightParams{Slices: 0, BatteryDurationMinutes: 10}, "slices"},
		{"ZeroDuration", FlightParams{Slices: 1, BatteryDurationMinutes: 0}, "battery_duration_minutes"},
		{"NegativeMinHeight", FlightParams{Slices: 1, BatteryDurationMinutes: 10, MinHeight: -5}, "min_height"},
		{"InvertedBounds", FlightParams{Slices: 1, BatteryDurationMinutes: 10, MinHeight: 200, MaxHeight: floatPtr(150)}, "max_height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestClone(t *testing.T) {
	orig := FlightParams{Slices: 2, BatteryDurationMinutes: 10, MinHeight: 120, MaxHeight: floatPtr(400)}

	clone := orig.Clone()
	require.NotSame(t, orig.MaxHeight, clone.MaxHeight)
	assert.Equal(t, orig, clone)

	// Writing through the clone's pointer leaves the original alone.
	*clone.MaxHeight = 55
	assert.Equal(t, 400.0, *orig.MaxHeight)

	uncapped := FlightParams{Slices: 1, BatteryDurationMinutes: 10}
	assert.Nil(t, uncapped.Clone().MaxHeight)
}

func TestPathFlatten(t *testing.T) {
	p := Path{Slices: [][]Waypoint{
		{{Phase: "outbound_start"}, {Phase: "hold_end"}},
		{{Phase: "outbound_start"}},
	}}

	flat := p.Flatten()
	require.Len(t, flat, 3)
	assert.Equal(t, 3, p.Count())
	// Slice order is preserved.
	assert.Equal(t, "hold_end", flat[1].Phase)
	assert.Equal(t, "outbound_start", flat[2].Phase)
}
