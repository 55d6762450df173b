package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orbitplan/pkg/mission"
)

func TestDeriveHeading(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"NorthOfCenterFacesSouth", 0, 150, 180},
		{"EastOfCenterFacesWest", 150, 0, 270},
		{"SouthOfCenterFacesNorth", 0, -150, 0},
		{"WestOfCenterFacesEast", -150, 0, 90},
		{"NortheastFacesSouthwest", 100, 100, 225},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Derive(mission.Waypoint{X: tt.x, Y: tt.y, Z: 100})
			assert.InDelta(t, tt.want, o.HeadingDeg, 1e-9)
			assert.GreaterOrEqual(t, o.HeadingDeg, 0.0)
			assert.Less(t, o.HeadingDeg, 360.0)
		})
	}
}

func TestDeriveGimbalPitch(t *testing.T) {
	// Directly above the subject: nadir.
	o := Derive(mission.Waypoint{X: 0, Y: 0, Z: 250})
	assert.Equal(t, -90.0, o.GimbalPitchDeg)

	// Equal altitude and distance: 45 degrees down.
	o = Derive(mission.Waypoint{X: 0, Y: 300, Z: 300})
	assert.InDelta(t, -45, o.GimbalPitchDeg, 1e-9)

	// Far out and low: pitch approaches level.
	far := Derive(mission.Waypoint{X: 0, Y: 3000, Z: 100})
	near := Derive(mission.Waypoint{X: 0, Y: 300, Z: 100})
	assert.Greater(t, far.GimbalPitchDeg, near.GimbalPitchDeg)
	assert.Less(t, far.GimbalPitchDeg, 0.0)
}

func TestDerivePath(t *testing.T) {
	p := mission.Path{Slices: [][]mission.Waypoint{
		{{X: 0, Y: 150, Z: 120}, {X: 150, Y: 0, Z: 120}},
		{{X: 0, Y: -150, Z: 120}},
	}}
	out := DerivePath(p)
	assert.Len(t, out, 2)
	assert.Len(t, out[0], 2)
	assert.Len(t, out[1], 1)
	assert.InDelta(t, 180, out[0][0].HeadingDeg, 1e-9)
	assert.InDelta(t, 0, out[1][0].HeadingDeg, 1e-9)
}
