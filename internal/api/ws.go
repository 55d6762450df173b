package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"orbitplan/pkg/config"
	"orbitplan/pkg/mission"
	"orbitplan/pkg/spiral"
)

// WSHandler serves the live regeneration feed: the UI pushes FlightParams
// as it changes sliders, the server answers each message with the freshly
// generated path. Requests are handled strictly in order on one connection,
// so the last answer always reflects the last parameters (last-write-wins);
// there is no queueing or cancellation.
type WSHandler struct {
	appCfg   *config.Config
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(cfg *config.Config) *WSHandler {
	return &WSHandler{
		appCfg: cfg,
		upgrader: websocket.Upgrader{
			// The UI is served from the same host; cross-origin callers are
			// local tooling.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// wsResult is one reply on the feed. Exactly one of Path or Error is set.
type wsResult struct {
	Params mission.FlightParams `json:"params"`
	Path   *mission.Path        `json:"path,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// Handle upgrades the connection and serves the request/response loop until
// the client disconnects.
func (h *WSHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		params := h.appCfg.Defaults.Clone()
		if err := conn.ReadJSON(&params); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("Websocket read failed", "error", err)
			}
			return
		}

		result := wsResult{Params: params}
		path, err := spiral.Generate(h.appCfg.Planner, params)
		if err != nil {
			var verr *mission.ValidationError
			if !errors.As(err, &verr) {
				slog.Error("Mission generation failed", "error", err)
			}
			result.Error = err.Error()
		} else {
			result.Path = &path
		}

		if err := conn.WriteJSON(result); err != nil {
			slog.Warn("Websocket write failed", "error", err)
			return
		}
	}
}
