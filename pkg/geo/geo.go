// Package geo places the mission-local coordinate frame on the globe.
// Mission geometry is computed in feet around the subject; exporters use a
// Projector to turn those offsets into WGS84 coordinates.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthRadiusM = 6371000
	feetPerMeter = 3.28084
)

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Projector maps mission-local offsets (feet, X east, Y north) to
// geographic coordinates around an origin. The local frame is treated as a
// tangent plane, which is accurate to well under a foot at mission scale
// (a few thousand feet).
type Projector struct {
	Origin Point
}

// NewProjector returns a projector anchored at the given mission center.
func NewProjector(lat, lon float64) Projector {
	return Projector{Origin: Point{Lat: lat, Lon: lon}}
}

// Project converts a local offset in feet to a geographic coordinate.
func (p Projector) Project(xFt, yFt float64) Point {
	dNorth := yFt / feetPerMeter / earthRadiusM
	lat := p.Origin.Lat + dNorth*180/math.Pi

	cosLat := math.Cos(p.Origin.Lat * math.Pi / 180)
	dEast := xFt / feetPerMeter / (earthRadiusM * cosLat)
	lon := p.Origin.Lon + dEast*180/math.Pi

	return Point{Lat: lat, Lon: lon}
}

// ProjectOrb is Project returning the lon/lat ordering orb expects.
func (p Projector) ProjectOrb(xFt, yFt float64) orb.Point {
	pt := p.Project(xFt, yFt)
	return orb.Point{pt.Lon, pt.Lat}
}

// Distance returns the Haversine distance between two points in meters.
func Distance(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	return earthRadiusM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
