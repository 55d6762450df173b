package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orbitplan/pkg/version"
)

func testServerHandler() http.Handler {
	cfg := testConfig()
	srv := NewServer(cfg,
		NewMissionHandler(cfg),
		NewConfigHandler(cfg),
		NewWSHandler(cfg),
		func() {},
	)
	return srv.Handler
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	testServerHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	testServerHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), version.Version) {
		t.Errorf("body %q does not contain version %q", rec.Body.String(), version.Version)
	}
}

func TestHandleGetConfig(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	testServerHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp ConfigResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Planner.InnerRadiusFt != 150 {
		t.Errorf("inner radius = %g, want 150", resp.Planner.InnerRadiusFt)
	}
	if resp.Defaults.Slices < 1 {
		t.Errorf("default slices = %d", resp.Defaults.Slices)
	}
}

func TestMissionEndpointMethodRouting(t *testing.T) {
	// GET on the generation endpoint is not routed.
	req := httptest.NewRequest(http.MethodGet, "/api/mission", nil)
	rec := httptest.NewRecorder()
	testServerHandler().ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		t.Error("GET /api/mission should not succeed")
	}
}
