package spiral

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Curve is the closed-form spiral for one battery slice, parametrized by
// mission time t in [0, TTotal]. One unit of t corresponds to one dphi of
// angular sweep; the outbound leg spans N units, the hold arc one unit, and
// the inbound leg N units again.
//
// The radius law is a two-segment exponential: a faster "early" growth rate
// up to 40% of the outbound leg, then a slower "late" rate out to the hold
// radius. The inbound leg decays at the late rate. The angular law is a
// triangle wave, sweeping the wedge back and forth once per time unit.
type Curve struct {
	dphi  float64
	n     int
	r0    float64
	rHold float64

	alphaEarly  float64
	alphaLate   float64
	tTransition float64
	rTransition float64

	tOut   float64
	tHold  float64
	tTotal float64

	// maxRadius is the radius actually reached at the end of the outbound
	// leg. It differs slightly from rHold because the two-segment rates are
	// tier-scaled versions of the single-rate solution.
	maxRadius float64
}

// growthTier returns the early/late scale factors applied to the base growth
// rate. Wider missions (large hold-to-inner ratio) front-load more of the
// radial travel so that photo density near the subject stays high.
func growthTier(radiusRatio float64) (early, late float64) {
	switch {
	case radiusRatio > 20:
		return 1.02, 0.80
	case radiusRatio > 10:
		return 1.05, 0.85
	default:
		return 1.0, 0.90
	}
}

// NewCurve builds the slice curve. dphi is the angular wedge width in
// radians, n the bounce count, r0 the inner standoff radius and rHold the
// target hold radius, both in feet. Callers must guarantee rHold > r0 > 0.
func NewCurve(dphi float64, n int, r0, rHold float64) *Curve {
	baseAlpha := math.Log(rHold/r0) / (float64(n) * dphi)
	early, late := growthTier(rHold / r0)

	c := &Curve{
		dphi:       dphi,
		n:          n,
		r0:         r0,
		rHold:      rHold,
		alphaEarly: baseAlpha * early,
		alphaLate:  baseAlpha * late,
		tOut:       float64(n) * dphi,
		tHold:      dphi,
	}
	c.tTotal = 2*c.tOut + c.tHold
	c.tTransition = 0.4 * c.tOut
	c.rTransition = r0 * math.Exp(c.alphaEarly*c.tTransition)
	c.maxRadius = c.rTransition * math.Exp(c.alphaLate*(c.tOut-c.tTransition))
	return c
}

// TOut returns the duration of the outbound leg.
func (c *Curve) TOut() float64 { return c.tOut }

// THold returns the duration of the hold arc.
func (c *Curve) THold() float64 { return c.tHold }

// TTotal returns the full cycle duration.
func (c *Curve) TTotal() float64 { return c.tTotal }

// MaxRadius returns the radius flown during the hold arc.
func (c *Curve) MaxRadius() float64 { return c.maxRadius }

// Radius evaluates the radius law at mission time t.
func (c *Curve) Radius(t float64) float64 {
	switch {
	case t <= c.tTransition:
		return c.r0 * math.Exp(c.alphaEarly*t)
	case t <= c.tOut:
		return c.rTransition * math.Exp(c.alphaLate*(t-c.tTransition))
	case t <= c.tOut+c.tHold:
		return c.maxRadius
	default:
		return c.maxRadius * math.Exp(-c.alphaLate*(t-c.tOut-c.tHold))
	}
}

// Phi evaluates the angular law at mission time t: a triangle wave over the
// wedge [0, dphi], completing one out-and-back sweep per 2 time units.
func (c *Curve) Phi(t float64) float64 {
	phase := math.Mod(math.Mod(t/c.dphi, 2)+2, 2)
	if phase <= 1 {
		return phase * c.dphi
	}
	return (2 - phase) * c.dphi
}

// At evaluates the curve at exact mission time t and returns the local-frame
// position along with the radius at that instant.
func (c *Curve) At(t float64) (x, y, r float64) {
	r = c.Radius(t)
	phi := c.Phi(t)
	return r * math.Cos(phi), r * math.Sin(phi), r
}

// TablePoint is one dense preview sample.
type TablePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Table samples the full cycle at steps uniform times. Waypoint extraction
// evaluates the closed form directly; the table exists only so viewers can
// draw the flown line as a polyline.
func (c *Curve) Table(steps int) []TablePoint {
	if steps < 2 {
		steps = 2
	}
	ts := floats.Span(make([]float64, steps), 0, c.tTotal)
	pts := make([]TablePoint, steps)
	for i, t := range ts {
		x, y, _ := c.At(t)
		pts[i] = TablePoint{X: x, Y: y}
	}
	return pts
}
