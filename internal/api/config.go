package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"orbitplan/pkg/config"
	"orbitplan/pkg/mission"
	"orbitplan/pkg/spiral"
)

// ConfigHandler exposes the effective planner configuration to the UI.
type ConfigHandler struct {
	appCfg *config.Config
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{appCfg: cfg}
}

// ConfigResponse represents the config API response.
type ConfigResponse struct {
	Planner   spiral.Config        `json:"planner"`
	Defaults  mission.FlightParams `json:"defaults"`
	OriginLat float64              `json:"origin_lat"`
	OriginLon float64              `json:"origin_lon"`
}

// HandleGet handles GET /api/config.
func (h *ConfigHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	resp := ConfigResponse{
		Planner:   h.appCfg.Planner,
		Defaults:  h.appCfg.Defaults,
		OriginLat: h.appCfg.Export.Origin.Lat,
		OriginLon: h.appCfg.Export.Origin.Lon,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode config response", "error", err)
	}
}
