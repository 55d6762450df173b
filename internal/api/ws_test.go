package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"orbitplan/pkg/config"
	"orbitplan/pkg/mission"
)

func dialTestWS(t *testing.T) *websocket.Conn {
	return dialWS(t, testConfig())
}

func dialWS(t *testing.T, cfg *config.Config) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(NewServer(cfg,
		NewMissionHandler(cfg),
		NewConfigHandler(cfg),
		NewWSHandler(cfg),
		func() {},
	).Handler)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWSGeneratesPathPerMessage(t *testing.T) {
	conn := dialTestWS(t)

	for _, slices := range []int{1, 3} {
		if err := conn.WriteJSON(mission.FlightParams{
			Slices:                 slices,
			BatteryDurationMinutes: 10,
			MinHeight:              120,
		}); err != nil {
			t.Fatalf("write: %v", err)
		}

		var result wsResult
		if err := conn.ReadJSON(&result); err != nil {
			t.Fatalf("read: %v", err)
		}
		if result.Error != "" {
			t.Fatalf("unexpected error: %s", result.Error)
		}
		if result.Path == nil || len(result.Path.Slices) != slices {
			t.Fatalf("expected %d slices, got %+v", slices, result.Path)
		}
	}
}

func TestWSKeepsDefaultsIntact(t *testing.T) {
	cfg := testConfig()
	ceiling := 400.0
	cfg.Defaults.MaxHeight = &ceiling
	conn := dialWS(t, cfg)

	// A ceiling sent on the feed must not write through to the configured
	// defaults shared by every connection.
	if err := conn.WriteJSON(map[string]float64{"max_height": 250}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var result wsResult
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("read: %v", err)
	}
	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.Params.MaxHeight == nil || *result.Params.MaxHeight != 250 {
		t.Errorf("request max_height = %v, want 250", result.Params.MaxHeight)
	}

	if ceiling != 400 {
		t.Fatalf("defaults max_height mutated to %g, want 400", ceiling)
	}

	// The next message with no ceiling falls back to the configured one.
	if err := conn.WriteJSON(map[string]float64{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("read: %v", err)
	}
	if result.Params.MaxHeight == nil || *result.Params.MaxHeight != 400 {
		t.Errorf("fallback max_height = %v, want 400", result.Params.MaxHeight)
	}
}

func TestWSReportsValidationError(t *testing.T) {
	conn := dialTestWS(t)

	if err := conn.WriteJSON(mission.FlightParams{
		Slices:                 0,
		BatteryDurationMinutes: 10,
	}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var result wsResult
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("read: %v", err)
	}
	if result.Error == "" {
		t.Fatal("expected a validation error")
	}
	if result.Path != nil {
		t.Fatal("no path should accompany an error")
	}
}
