package handlers

import (
	"encoding/json"

	"github.com/gofiber/websocket/v2"
)

// ProgressSocket returns the WebSocket handler that relays generation
// progress to UI clients. On connect the client receives the current session
// snapshot, then every subsequent update as the hub broadcasts it.
func (h *ApplicationHandler) ProgressSocket() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		// Send the current session state so late joiners are not blank. This
		// must happen before the connection is registered: once registered,
		// the hub's dispatch goroutine is the connection's only writer.
		snap := h.Controller.Current()
		initial, err := json.Marshal(map[string]interface{}{
			"type":       "session_snapshot",
			"session_id": snap.SessionID,
			"state":      snap.State,
			"progress":   snap.Progress,
			"ratio":      snap.Ratio,
		})
		if err == nil {
			conn.WriteMessage(websocket.TextMessage, initial)
		}

		h.Hub.RegisterClient(conn)

		// Read until the client goes away; inbound messages are ignored.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.Hub.UnregisterClient(conn)
				break
			}
		}
	}
}
