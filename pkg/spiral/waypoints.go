package spiral

import (
	"fmt"
	"math"

	"orbitplan/pkg/mission"
)

// Turn-smoothing radius parameters for flight-controller arc fitting.
// Densification midpoints sit on gentle arcs and tolerate wide turns;
// primary waypoints (bounce apexes, hold end) need tight, predictable turns.
const (
	midCurveBase  = 50.0
	midCurveScale = 1.2
	midCurveMax   = 1500.0

	primaryCurveBase  = 40.0
	primaryCurveScale = 0.05
	primaryCurveMax   = 160.0
)

// densityFractions returns the extra sampling fractions inserted between
// consecutive bounce apexes. Few batteries mean few natural waypoints, so
// low slice counts densify harder.
func densityFractions(slices int) []float64 {
	switch {
	case slices == 1:
		return []float64{1.0 / 6, 2.0 / 6, 3.0 / 6, 4.0 / 6, 5.0 / 6}
	case slices == 2:
		return []float64{1.0 / 3, 2.0 / 3}
	default:
		return []float64{0.5}
	}
}

// quantileSuffix disambiguates phase tags when more than one density
// fraction is in play, e.g. "_q33" for f=1/3.
func quantileSuffix(f float64, multi bool) string {
	if !multi {
		return ""
	}
	return fmt.Sprintf("_q%d", int(math.Round(f*100)))
}

func curveRadius(r float64, midpoint bool) float64 {
	base, scale, maxR := primaryCurveBase, primaryCurveScale, primaryCurveMax
	if midpoint {
		base, scale, maxR = midCurveBase, midCurveScale, midCurveMax
	}
	cr := math.Min(maxR, base+scale*r)
	return math.Round(cr*10) / 10
}

// buildSlice extracts the tagged waypoints for one battery slice. Each
// slice flies a copy of the curve rotated by offset = pi/2 + sliceIdx*dphi,
// so slice 0 starts due north of the subject and successive batteries
// occupy successive wedges. Waypoints are emitted in strictly increasing
// mission time; altitudes are assigned afterwards by profileAltitude.
func buildSlice(c *Curve, sliceIdx int, fracs []float64) []mission.Waypoint {
	offset := math.Pi/2 + float64(sliceIdx)*c.dphi
	sin, cos := math.Sin(offset), math.Cos(offset)
	multi := len(fracs) > 1

	var ws []mission.Waypoint
	emit := func(t float64, phase string, midpoint bool) {
		x, y, r := c.At(t)
		ws = append(ws, mission.Waypoint{
			X:           x*cos - y*sin,
			Y:           x*sin + y*cos,
			Phase:       phase,
			Index:       len(ws),
			CurveRadius: curveRadius(r, midpoint),
		})
	}

	emit(0, "outbound_start", false)
	for b := 1; b <= c.n; b++ {
		// t = (b-f)*dphi grows as f shrinks; walk fractions backwards to
		// keep mission time increasing.
		for i := len(fracs) - 1; i >= 0; i-- {
			f := fracs[i]
			emit((float64(b)-f)*c.dphi, fmt.Sprintf("outbound_mid_%d%s", b, quantileSuffix(f, multi)), true)
		}
		emit(float64(b)*c.dphi, fmt.Sprintf("outbound_bounce_%d", b), false)
	}

	for _, f := range fracs {
		emit(c.tOut+f*c.tHold, "hold_mid"+quantileSuffix(f, multi), true)
	}
	tEndHold := c.tOut + c.tHold
	emit(tEndHold, "hold_end", false)

	for _, f := range fracs {
		emit(tEndHold+f*c.dphi, "inbound_mid_0"+quantileSuffix(f, multi), true)
	}
	for b := 1; b <= c.n; b++ {
		emit(tEndHold+float64(b)*c.dphi, fmt.Sprintf("inbound_bounce_%d", b), false)
		if b == c.n {
			break
		}
		for _, f := range fracs {
			emit(tEndHold+(float64(b)+f)*c.dphi, fmt.Sprintf("inbound_mid_%d%s", b, quantileSuffix(f, multi)), true)
		}
	}
	return ws
}
