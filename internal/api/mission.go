package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"orbitplan/pkg/camera"
	"orbitplan/pkg/config"
	"orbitplan/pkg/export"
	"orbitplan/pkg/geo"
	"orbitplan/pkg/mission"
	"orbitplan/pkg/spiral"
)

// maxPreviewSteps bounds the sample count a preview request may ask for;
// each step is one table point per slice, so anything past this is an
// allocation attack, not a plausible viewer.
const maxPreviewSteps = 100000

// MissionHandler serves mission path generation requests.
type MissionHandler struct {
	appCfg *config.Config
}

// NewMissionHandler creates a new MissionHandler.
func NewMissionHandler(cfg *config.Config) *MissionHandler {
	return &MissionHandler{appCfg: cfg}
}

// MissionResponse is the generation API response.
type MissionResponse struct {
	ID           string                 `json:"id"`
	Params       mission.FlightParams   `json:"params"`
	Path         mission.Path           `json:"path"`
	Orientations [][]camera.Orientation `json:"orientations"`
}

// HandleGenerate handles POST /api/mission. The request body is a partial
// FlightParams; omitted fields fall back to the configured defaults.
func (h *MissionHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	params := h.appCfg.Defaults.Clone()
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	path, err := spiral.Generate(h.appCfg.Planner, params)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	resp := MissionResponse{
		ID:           uuid.NewString(),
		Params:       params,
		Path:         path,
		Orientations: camera.DerivePath(path),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode mission response", "error", err)
	}
}

// PreviewResponse carries the dense per-slice polylines for map rendering.
type PreviewResponse struct {
	Slices [][]spiral.TablePoint `json:"slices"`
}

// HandlePreview handles GET /api/mission/preview.
func (h *MissionHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	params, steps, ok := h.queryParams(w, r)
	if !ok {
		return
	}
	if err := params.Validate(); err != nil {
		writeGenerateError(w, err)
		return
	}

	resp := PreviewResponse{Slices: make([][]spiral.TablePoint, params.Slices)}
	for i := 0; i < params.Slices; i++ {
		pts, err := spiral.PreviewCurve(h.appCfg.Planner, params, i, steps)
		if err != nil {
			writeGenerateError(w, err)
			return
		}
		resp.Slices[i] = pts
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode preview response", "error", err)
	}
}

// HandleGeoJSON handles GET /api/mission/geojson. Optional lat/lon query
// parameters move the mission center; the configured origin is the default.
func (h *MissionHandler) HandleGeoJSON(w http.ResponseWriter, r *http.Request) {
	params, _, ok := h.queryParams(w, r)
	if !ok {
		return
	}

	origin := h.appCfg.Export.Origin
	if v := r.URL.Query().Get("lat"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid lat", http.StatusBadRequest)
			return
		}
		origin.Lat = lat
	}
	if v := r.URL.Query().Get("lon"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid lon", http.StatusBadRequest)
			return
		}
		origin.Lon = lon
	}

	path, err := spiral.Generate(h.appCfg.Planner, params)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	fc := export.FeatureCollection(path, geo.NewProjector(origin.Lat, origin.Lon))
	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		slog.Error("Failed to encode geojson response", "error", err)
	}
}

// queryParams assembles FlightParams from query string overrides over the
// configured defaults. Reports false after writing an error response.
func (h *MissionHandler) queryParams(w http.ResponseWriter, r *http.Request) (mission.FlightParams, int, bool) {
	params := h.appCfg.Defaults.Clone()
	q := r.URL.Query()

	if v := q.Get("slices"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid slices", http.StatusBadRequest)
			return params, 0, false
		}
		params.Slices = n
	}
	if v := q.Get("battery_minutes"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid battery_minutes", http.StatusBadRequest)
			return params, 0, false
		}
		params.BatteryDurationMinutes = m
	}
	if v := q.Get("min_height"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid min_height", http.StatusBadRequest)
			return params, 0, false
		}
		params.MinHeight = m
	}
	if v := q.Get("max_height"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid max_height", http.StatusBadRequest)
			return params, 0, false
		}
		params.MaxHeight = &m
	}

	steps := 0
	if v := q.Get("steps"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n > maxPreviewSteps {
			http.Error(w, "invalid steps", http.StatusBadRequest)
			return params, 0, false
		}
		steps = n
	}
	return params, steps, true
}

// writeGenerateError maps generator failures to HTTP status codes:
// parameter validation is the client's fault, anything else is ours.
func writeGenerateError(w http.ResponseWriter, err error) {
	var verr *mission.ValidationError
	if errors.As(err, &verr) {
		http.Error(w, verr.Error(), http.StatusBadRequest)
		return
	}
	slog.Error("Mission generation failed", "error", err)
	http.Error(w, "mission generation failed", http.StatusInternalServerError)
}
