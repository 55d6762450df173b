// Package spiral generates the waypoint geometry for spiral photogrammetry
// missions: an exponential outbound climb away from the subject, a
// constant-radius hold arc at the outer edge, and an exponential inbound
// return, sliced into one angular wedge per battery.
package spiral

import "math"

// Config holds the planner tuning constants. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// InnerRadiusFt is the standoff radius at mission start, in feet.
	InnerRadiusFt float64 `json:"inner_radius_ft" yaml:"inner_radius_ft"`
	// HoldRadiusBaseFt is the hold radius flown on a 10-minute battery.
	// The actual hold radius scales linearly with battery duration.
	HoldRadiusBaseFt float64 `json:"hold_radius_base_ft" yaml:"hold_radius_base_ft"`
	// ClimbRate is feet of altitude gained per foot of radial travel
	// during the outbound and hold phases.
	ClimbRate float64 `json:"climb_rate" yaml:"climb_rate"`
	// DescentRate is feet of altitude shed per foot of radial travel
	// during the inbound phase.
	DescentRate float64 `json:"descent_rate" yaml:"descent_rate"`
	// TableSteps is the sample count for dense preview polylines.
	TableSteps int `json:"table_steps" yaml:"table_steps"`
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		InnerRadiusFt:    150,
		HoldRadiusBaseFt: 1595,
		ClimbRate:        0.2,
		DescentRate:      0.2,
		TableSteps:       1200,
	}
}

// Bounces maps battery duration in minutes to the number of back-and-forth
// angular sweeps flown on the way out (and again on the way back in).
// Longer batteries buy more sweeps, clamped to [3, 12].
func Bounces(minutes float64) int {
	n := int(math.Round(5 + 0.3*(minutes-10)))
	if n < 3 {
		return 3
	}
	if n > 12 {
		return 12
	}
	return n
}

// HoldRadius returns the outer hold radius in feet for the given battery
// duration. The radius scales with duration so that spatial coverage tracks
// available flight time; a 10-minute battery flies HoldRadiusBaseFt.
func (c Config) HoldRadius(minutes float64) float64 {
	return c.HoldRadiusBaseFt * minutes / 10
}
