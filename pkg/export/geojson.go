package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"orbitplan/pkg/geo"
	"orbitplan/pkg/mission"
)

// FeatureCollection renders a mission path as GeoJSON: one LineString per
// battery slice plus one Point per waypoint, all anchored via the projector.
// Viewers draw the lines and label the points.
func FeatureCollection(p mission.Path, proj geo.Projector) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for sliceIdx, ws := range p.Slices {
		line := make(orb.LineString, 0, len(ws))
		for _, wp := range ws {
			line = append(line, proj.ProjectOrb(wp.X, wp.Y))
		}
		lf := geojson.NewFeature(line)
		lf.Properties["kind"] = "track"
		lf.Properties["slice"] = sliceIdx
		fc.Append(lf)

		for _, wp := range ws {
			pf := geojson.NewFeature(proj.ProjectOrb(wp.X, wp.Y))
			pf.Properties["kind"] = "waypoint"
			pf.Properties["slice"] = sliceIdx
			pf.Properties["index"] = wp.Index
			pf.Properties["phase"] = wp.Phase
			pf.Properties["alt_ft"] = wp.Z
			pf.Properties["curve_radius_ft"] = wp.CurveRadius
			fc.Append(pf)
		}
	}
	return fc
}
