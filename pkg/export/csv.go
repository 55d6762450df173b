// Package export writes generated mission paths into the formats consumed
// downstream: per-battery CSV for the drone mission app, GeoJSON for map
// viewers, and shapefiles for GIS handoff. Exporters treat the path as
// read-only and never reorder or deduplicate waypoints.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"orbitplan/pkg/camera"
	"orbitplan/pkg/geo"
	"orbitplan/pkg/mission"
)

// csvHeader is the column contract with the mission app. Order matters.
var csvHeader = []string{
	"index", "lat", "lon", "x_ft", "y_ft", "alt_ft",
	"heading_deg", "gimbal_pitch_deg", "curve_radius_ft", "phase",
}

// CSVExporter writes one CSV file per battery slice.
type CSVExporter struct {
	Proj geo.Projector
}

// WriteMission writes mission_battery_NN.csv for every slice into dir,
// creating it if needed. It returns the written file paths in slice order.
func (e CSVExporter) WriteMission(dir string, p mission.Path) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(p.Slices))
	for i, ws := range p.Slices {
		path := filepath.Join(dir, fmt.Sprintf("mission_battery_%02d.csv", i))
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		err = e.WriteSlice(f, ws)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteSlice writes one slice's waypoints, in the order given, to w.
func (e CSVExporter) WriteSlice(w io.Writer, ws []mission.Waypoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, wp := range ws {
		pt := e.Proj.Project(wp.X, wp.Y)
		orient := camera.Derive(wp)
		rec := []string{
			strconv.Itoa(wp.Index),
			strconv.FormatFloat(pt.Lat, 'f', 7, 64),
			strconv.FormatFloat(pt.Lon, 'f', 7, 64),
			strconv.FormatFloat(wp.X, 'f', 2, 64),
			strconv.FormatFloat(wp.Y, 'f', 2, 64),
			strconv.FormatFloat(wp.Z, 'f', 2, 64),
			strconv.FormatFloat(orient.HeadingDeg, 'f', 1, 64),
			strconv.FormatFloat(orient.GimbalPitchDeg, 'f', 1, 64),
			strconv.FormatFloat(wp.CurveRadius, 'f', 1, 64),
			wp.Phase,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
