package mission

import "fmt"

// FlightParams describes one photogrammetry mission request.
// It is an immutable value: callers build a fresh FlightParams for every
// parameter change, the planner never mutates it.
type FlightParams struct {
	// Slices is the number of battery slices the mission is split into.
	Slices int `json:"slices" yaml:"slices"`
	// BatteryDurationMinutes is the usable flight time per battery.
	BatteryDurationMinutes float64 `json:"battery_duration_minutes" yaml:"battery_duration_minutes"`
	// MinHeight is the AGL floor for every waypoint, in feet.
	MinHeight float64 `json:"min_height" yaml:"min_height"`
	// MaxHeight is the optional AGL ceiling in feet. Nil means uncapped.
	MaxHeight *float64 `json:"max_height,omitempty" yaml:"max_height,omitempty"`
}

// Clone returns an independent copy. FlightParams is otherwise a plain
// value, but MaxHeight is a pointer: decoding a request on top of a shared
// copy would write through it, so handlers clone the defaults first.
func (p FlightParams) Clone() FlightParams {
	if p.MaxHeight != nil {
		v := *p.MaxHeight
		p.MaxHeight = &v
	}
	return p
}

// Waypoint is a single position in a mission path. X/Y are feet in the
// mission-local frame (origin at the subject, Y pointing north), Z is feet
// AGL. Phase is a stable machine-parseable segment tag such as
// "outbound_bounce_3" or "inbound_mid_2_q33"; exporters key off it and it
// must never be renamed casually.
type Waypoint struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	Phase       string  `json:"phase"`
	Index       int     `json:"index"`
	CurveRadius float64 `json:"curve_radius"`
}

// Path is a generated mission: one ordered waypoint sequence per battery
// slice, slices in ascending index order, waypoints in mission-time order.
type Path struct {
	Slices [][]Waypoint `json:"slices"`
}

// Flatten concatenates all slices into a single ordered sequence.
func (p Path) Flatten() []Waypoint {
	var out []Waypoint
	for _, s := range p.Slices {
		out = append(out, s...)
	}
	return out
}

// Count returns the total number of waypoints across all slices.
func (p Path) Count() int {
	n := 0
	for _, s := range p.Slices {
		n += len(s)
	}
	return n
}

// ValidationError reports a FlightParams field that fails the planner's
// preconditions. Generation is rejected before any computation; values are
// never silently clamped.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid flight params: %s %s", e.Field, e.Reason)
}

// Validate checks the request-level preconditions. Geometry-level checks
// (degenerate radii) happen in the planner, which knows the radius law.
func (p FlightParams) Validate() error {
	if p.Slices < 1 {
		return &ValidationError{Field: "slices", Reason: fmt.Sprintf("must be >= 1, got %d", p.Slices)}
	}
	if p.BatteryDurationMinutes <= 0 {
		return &ValidationError{Field: "battery_duration_minutes", Reason: fmt.Sprintf("must be > 0, got %g", p.BatteryDurationMinutes)}
	}
	if p.MinHeight < 0 {
		return &ValidationError{Field: "min_height", Reason: fmt.Sprintf("must be >= 0, got %g", p.MinHeight)}
	}
	if p.MaxHeight != nil && *p.MaxHeight < p.MinHeight {
		return &ValidationError{Field: "max_height", Reason: fmt.Sprintf("%g is below min_height %g", *p.MaxHeight, p.MinHeight)}
	}
	return nil
}
