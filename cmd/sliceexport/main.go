// sliceexport generates a mission from command-line parameters and writes
// the per-battery files consumed downstream: CSV always, GeoJSON and
// shapefiles on request.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"orbitplan/pkg/export"
	"orbitplan/pkg/geo"
	"orbitplan/pkg/mission"
	"orbitplan/pkg/spiral"
)

func main() {
	slices := flag.Int("slices", 1, "Number of battery slices")
	battery := flag.Float64("battery-minutes", 10, "Usable flight minutes per battery")
	minHeight := flag.Float64("min-height", 120, "AGL floor in feet")
	maxHeight := flag.Float64("max-height", 0, "AGL ceiling in feet (0 = uncapped)")
	lat := flag.Float64("lat", 47.6205, "Mission center latitude")
	lon := flag.Float64("lon", -122.3493, "Mission center longitude")
	outDir := flag.String("out", "./out", "Output directory")
	writeGeoJSON := flag.Bool("geojson", false, "Also write mission.geojson")
	writeShp := flag.Bool("shp", false, "Also write waypoint/track shapefiles")
	flag.Parse()

	params := mission.FlightParams{
		Slices:                 *slices,
		BatteryDurationMinutes: *battery,
		MinHeight:              *minHeight,
	}
	if *maxHeight > 0 {
		params.MaxHeight = maxHeight
	}

	if err := run(params, *lat, *lon, *outDir, *writeGeoJSON, *writeShp); err != nil {
		log.Fatal(err)
	}
}

func run(params mission.FlightParams, lat, lon float64, outDir string, writeGeoJSON, writeShp bool) error {
	path, err := spiral.Generate(spiral.DefaultConfig(), params)
	if err != nil {
		return err
	}

	proj := geo.NewProjector(lat, lon)
	csvPaths, err := export.CSVExporter{Proj: proj}.WriteMission(outDir, path)
	if err != nil {
		return err
	}
	for _, p := range csvPaths {
		fmt.Println("wrote", p)
	}

	if writeGeoJSON {
		fc := export.FeatureCollection(path, proj)
		data, err := json.MarshalIndent(fc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal geojson: %w", err)
		}
		gj := filepath.Join(outDir, "mission.geojson")
		if err := os.WriteFile(gj, data, 0o644); err != nil {
			return fmt.Errorf("failed to write geojson: %w", err)
		}
		fmt.Println("wrote", gj)
	}

	if writeShp {
		wpShp := filepath.Join(outDir, "waypoints.shp")
		if err := export.WriteWaypointShapefile(wpShp, path, proj); err != nil {
			return err
		}
		fmt.Println("wrote", wpShp)

		trackShp := filepath.Join(outDir, "track.shp")
		if err := export.WriteTrackShapefile(trackShp, path, proj); err != nil {
			return err
		}
		fmt.Println("wrote", trackShp)
	}
	return nil
}
