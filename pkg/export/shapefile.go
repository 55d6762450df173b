package export

import (
	"fmt"

	"github.com/jonas-p/go-shp"

	"orbitplan/pkg/geo"
	"orbitplan/pkg/mission"
)

// WriteWaypointShapefile writes every waypoint as a PointZ shape with
// phase/slice/altitude attributes, for GIS tooling.
func WriteWaypointShapefile(path string, p mission.Path, proj geo.Projector) error {
	w, err := shp.Create(path, shp.POINTZ)
	if err != nil {
		return fmt.Errorf("failed to create shapefile %s: %w", path, err)
	}
	defer w.Close()

	if err := w.SetFields([]shp.Field{
		shp.StringField("PHASE", 32),
		shp.NumberField("SLICE", 4),
		shp.NumberField("IDX", 6),
		shp.FloatField("ALT_FT", 12, 2),
		shp.FloatField("CURVE_FT", 12, 2),
	}); err != nil {
		return fmt.Errorf("failed to set shapefile fields: %w", err)
	}

	row := 0
	for sliceIdx, ws := range p.Slices {
		for _, wp := range ws {
			pt := proj.Project(wp.X, wp.Y)
			w.Write(&shp.PointZ{X: pt.Lon, Y: pt.Lat, Z: wp.Z})
			if err := writeAttributes(w, row, wp.Phase, sliceIdx, wp.Index, wp.Z, wp.CurveRadius); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// writeAttributes writes one DBF row, stopping at the first failed field so
// a full disk surfaces as an error instead of a truncated attribute table.
func writeAttributes(w *shp.Writer, row int, values ...interface{}) error {
	for field, v := range values {
		if err := w.WriteAttribute(row, field, v); err != nil {
			return fmt.Errorf("failed to write shapefile attribute row %d field %d: %w", row, field, err)
		}
	}
	return nil
}

// WriteTrackShapefile writes one polyline per battery slice.
func WriteTrackShapefile(path string, p mission.Path, proj geo.Projector) error {
	w, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		return fmt.Errorf("failed to create shapefile %s: %w", path, err)
	}
	defer w.Close()

	if err := w.SetFields([]shp.Field{
		shp.NumberField("SLICE", 4),
		shp.NumberField("NUMWP", 6),
	}); err != nil {
		return fmt.Errorf("failed to set shapefile fields: %w", err)
	}

	for sliceIdx, ws := range p.Slices {
		pts := make([]shp.Point, 0, len(ws))
		for _, wp := range ws {
			pt := proj.Project(wp.X, wp.Y)
			pts = append(pts, shp.Point{X: pt.Lon, Y: pt.Lat})
		}
		w.Write(shp.NewPolyLine([][]shp.Point{pts}))
		if err := writeAttributes(w, sliceIdx, sliceIdx, len(ws)); err != nil {
			return err
		}
	}
	return nil
}
