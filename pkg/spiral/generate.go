package spiral

import (
	"fmt"
	"math"
	"sync"

	"orbitplan/pkg/mission"
)

// Generate computes the full mission path for the given parameters. It is
// pure and deterministic: identical inputs yield bit-identical output, and
// nothing is retained between calls. Invalid parameters are rejected up
// front with a mission.ValidationError; no partial path is ever returned.
//
// Slices are independent rotated copies of the same curve, so they are
// computed concurrently and joined in slice order.
func Generate(cfg Config, params mission.FlightParams) (mission.Path, error) {
	if err := params.Validate(); err != nil {
		return mission.Path{}, err
	}

	rHold := cfg.HoldRadius(params.BatteryDurationMinutes)
	if cfg.InnerRadiusFt <= 0 || rHold <= cfg.InnerRadiusFt {
		return mission.Path{}, &mission.ValidationError{
			Field: "battery_duration_minutes",
			Reason: fmt.Sprintf("hold radius %.1f ft does not clear the inner radius %.1f ft",
				rHold, cfg.InnerRadiusFt),
		}
	}

	dphi := 2 * math.Pi / float64(params.Slices)
	n := Bounces(params.BatteryDurationMinutes)
	curve := NewCurve(dphi, n, cfg.InnerRadiusFt, rHold)
	fracs := densityFractions(params.Slices)

	slices := make([][]mission.Waypoint, params.Slices)
	var wg sync.WaitGroup
	for idx := range slices {
		wg.Add(1)
		go func(sliceIdx int) {
			defer wg.Done()
			ws := buildSlice(curve, sliceIdx, fracs)
			profileAltitude(ws, params.MinHeight, params.MaxHeight, cfg.ClimbRate, cfg.DescentRate)
			slices[sliceIdx] = ws
		}(idx)
	}
	wg.Wait()

	return mission.Path{Slices: slices}, nil
}

// PreviewCurve returns the dense polyline for one slice of the given
// parameters, for map rendering. It shares validation with Generate.
func PreviewCurve(cfg Config, params mission.FlightParams, sliceIdx, steps int) ([]TablePoint, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	rHold := cfg.HoldRadius(params.BatteryDurationMinutes)
	if cfg.InnerRadiusFt <= 0 || rHold <= cfg.InnerRadiusFt {
		return nil, &mission.ValidationError{
			Field:  "battery_duration_minutes",
			Reason: fmt.Sprintf("hold radius %.1f ft does not clear the inner radius %.1f ft", rHold, cfg.InnerRadiusFt),
		}
	}
	if sliceIdx < 0 || sliceIdx >= params.Slices {
		return nil, &mission.ValidationError{
			Field:  "slice",
			Reason: fmt.Sprintf("index %d out of range [0, %d)", sliceIdx, params.Slices),
		}
	}
	if steps <= 0 {
		steps = cfg.TableSteps
	}

	dphi := 2 * math.Pi / float64(params.Slices)
	curve := NewCurve(dphi, Bounces(params.BatteryDurationMinutes), cfg.InnerRadiusFt, rHold)
	pts := curve.Table(steps)

	offset := math.Pi/2 + float64(sliceIdx)*dphi
	sin, cos := math.Sin(offset), math.Cos(offset)
	for i, p := range pts {
		pts[i] = TablePoint{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
	}
	return pts, nil
}
