package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"station-server/entities"
	"station-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event types pushed to station feed subscribers.
const (
	EventStationCreated = "station_created"
	EventStationUpdated = "station_updated"
	EventStationDeleted = "station_deleted"
)

type stationEvent struct {
	Type string            `json:"type"`
	Data *entities.Station `json:"data,omitempty"`
	ID   string            `json:"id,omitempty"`
}

// EventHandler fans station lifecycle events out to websocket subscribers.
type EventHandler struct {
	hub *ws.Hub
}

func NewEventHandler(hub *ws.Hub) *EventHandler {
	return &EventHandler{hub: hub}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleEventFeed upgrades to websocket and keeps the connection
// registered until the client goes away. GET /ws
func (h *EventHandler) HandleEventFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)
	log.Printf("event feed subscriber connected (%d active)", h.hub.Count())

	defer func() {
		h.hub.Unregister(conn)
		log.Printf("event feed subscriber disconnected (%d active)", h.hub.Count())
	}()

	// Subscribers never send anything meaningful; reading just detects
	// disconnects and drains control frames.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("event feed read error: %v", err)
			}
			return
		}
	}
}

// StationCreated broadcasts a creation event.
func (h *EventHandler) StationCreated(station *entities.Station) {
	h.broadcast(stationEvent{Type: EventStationCreated, Data: station})
}

// StationUpdated broadcasts an update event.
func (h *EventHandler) StationUpdated(station *entities.Station) {
	h.broadcast(stationEvent{Type: EventStationUpdated, Data: station})
}

// StationDeleted broadcasts a deletion event carrying only the ID.
func (h *EventHandler) StationDeleted(id string) {
	h.broadcast(stationEvent{Type: EventStationDeleted, ID: id})
}

func (h *EventHandler) broadcast(ev stationEvent) {
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("failed to marshal station event: %v", err)
		return
	}
	h.hub.Broadcast(b)
}
