package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"orbitplan/pkg/config"
	"orbitplan/pkg/version"
)

// NewServer creates and configures the HTTP server. It accepts handlers for
// all API endpoints and a shutdownFunc for graceful shutdown.
func NewServer(cfg *config.Config, missionH *MissionHandler, configH *ConfigHandler, wsH *WSHandler, shutdown func()) *http.Server {
	mux := http.NewServeMux()

	// 1. Health Endpoint
	mux.HandleFunc("GET /health", handleHealth)

	// 2. Version Endpoint
	mux.HandleFunc("GET /api/version", handleVersion)

	// 3. Config Endpoint
	mux.HandleFunc("GET /api/config", configH.HandleGet)

	// 4. Mission Endpoints
	mux.HandleFunc("POST /api/mission", missionH.HandleGenerate)
	mux.HandleFunc("GET /api/mission/preview", missionH.HandlePreview)
	mux.HandleFunc("GET /api/mission/geojson", missionH.HandleGeoJSON)

	// 5. Live regeneration feed
	mux.HandleFunc("GET /api/ws", wsH.Handle)

	// 6. Shutdown Endpoint
	mux.HandleFunc("POST /api/shutdown", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		// Call shutdown in a goroutine to allow the response to flush
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	})

	return &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
		IdleTimeout:  60 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}
