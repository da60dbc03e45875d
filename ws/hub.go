package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"paceflow/blog-gateway/stream"
)

// ProgressHub relays generation-session updates to connected WebSocket
// clients so the UI can show live progress without polling.
type ProgressHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// NewProgressHub creates a new hub.
func NewProgressHub() *ProgressHub {
	return &ProgressHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Start begins the hub's dispatch loop.
func (h *ProgressHub) Start() {
	go func() {
		for {
			select {
			case client := <-h.register:
				h.mu.Lock()
				h.clients[client] = true
				total := len(h.clients)
				h.mu.Unlock()
				log.Printf("New WebSocket client connected. Total clients: %d", total)
			case client := <-h.unregister:
				h.mu.Lock()
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					client.Close()
				}
				remaining := len(h.clients)
				h.mu.Unlock()
				log.Printf("WebSocket client disconnected. Remaining clients: %d", remaining)
			case message := <-h.broadcast:
				h.mu.Lock()
				for client := range h.clients {
					err := client.WriteMessage(websocket.TextMessage, message)
					if err != nil {
						log.Printf("Error sending message to client: %v", err)
						client.Close()
						delete(h.clients, client)
					}
				}
				h.mu.Unlock()
			}
		}
	}()
}

// BroadcastSnapshot sends a session snapshot to all connected clients.
func (h *ProgressHub) BroadcastSnapshot(snap stream.Snapshot) {
	update := map[string]interface{}{
		"type":       "session_update",
		"session_id": snap.SessionID,
		"state":      snap.State,
		"progress":   snap.Progress,
		"ratio":      snap.Ratio,
	}

	if snap.State == stream.StateFailed && snap.Reason != "" {
		update["error"] = snap.Reason
	}
	if snap.Post != nil {
		update["post_id"] = snap.Post.ID
	}

	jsonData, err := json.Marshal(update)
	if err != nil {
		log.Printf("Failed to marshal session update: %v", err)
		return
	}

	h.broadcast <- jsonData
}

// ClientCount returns the number of currently connected clients.
func (h *ProgressHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// RegisterClient registers a new WebSocket client.
func (h *ProgressHub) RegisterClient(conn *websocket.Conn) {
	h.register <- conn
}

// UnregisterClient unregisters a WebSocket client.
func (h *ProgressHub) UnregisterClient(conn *websocket.Conn) {
	h.unregister <- conn
}
