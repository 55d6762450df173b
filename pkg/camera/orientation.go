// Package camera derives display-only camera orientations for mission
// waypoints. It is consumed by viewers; the mission geometry core never
// imports it.
package camera

import (
	"math"

	"orbitplan/pkg/mission"
)

// Orientation aims a waypoint's camera at the mission center.
type Orientation struct {
	// HeadingDeg is the yaw toward the center, degrees in [0, 360),
	// 0 = north (+Y), 90 = east (+X).
	HeadingDeg float64 `json:"heading_deg"`
	// GimbalPitchDeg is the camera tilt: -90 is nadir, shallower (toward 0)
	// as the waypoint moves out relative to its altitude.
	GimbalPitchDeg float64 `json:"gimbal_pitch_deg"`
}

// Derive computes the orientation for a single waypoint.
func Derive(w mission.Waypoint) Orientation {
	heading := math.Atan2(-w.X, -w.Y) * 180 / math.Pi
	if heading < 0 {
		heading += 360
	}

	horizontal := math.Hypot(w.X, w.Y)
	pitch := -90.0
	if horizontal > 0 {
		pitch = -(90 - math.Atan2(w.Z, horizontal)*180/math.Pi)
	}

	return Orientation{HeadingDeg: heading, GimbalPitchDeg: pitch}
}

// DerivePath computes orientations for every waypoint, slice by slice,
// preserving order.
func DerivePath(p mission.Path) [][]Orientation {
	out := make([][]Orientation, len(p.Slices))
	for i, ws := range p.Slices {
		row := make([]Orientation, len(ws))
		for j, w := range ws {
			row[j] = Derive(w)
		}
		out[i] = row
	}
	return out
}
