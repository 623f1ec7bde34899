package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub keeps track of subscribers to the station event feed.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[*websocket.Conn]struct{})}
}

// Register adds a subscriber connection.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[conn] = struct{}{}
}

// Unregister removes and closes a subscriber connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[conn]; ok {
		_ = conn.Close()
		delete(h.subscribers, conn)
	}
}

// Broadcast sends a text message to every subscriber. Connections whose
// writes fail are dropped.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.subscribers {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(h.subscribers, conn)
		}
	}
}

// Count returns the number of active subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
