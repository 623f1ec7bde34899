package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"station-server/entities"
	"station-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFeed_BroadcastsStationEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := ws.NewHub()
	handler := NewEventHandler(hub)

	app := gin.New()
	app.GET("/ws", handler.HandleEventFeed)

	srv := httptest.NewServer(app)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// registration happens just after the upgrade completes
	require.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 10*time.Millisecond)

	station := &entities.Station{
		ID:            "st-1",
		Name:          "Pier 9",
		Status:        entities.StatusActive,
		PowerOutput:   50,
		ConnectorType: "CCS",
		OwnerID:       "alice",
	}
	handler.StationCreated(station)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev struct {
		Type string           `json:"type"`
		Data entities.Station `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &ev))
	assert.Equal(t, EventStationCreated, ev.Type)
	assert.Equal(t, "st-1", ev.Data.ID)

	handler.StationDeleted("st-1")

	_, payload, err = conn.ReadMessage()
	require.NoError(t, err)

	var del struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(payload, &del))
	assert.Equal(t, EventStationDeleted, del.Type)
	assert.Equal(t, "st-1", del.ID)
}

func TestHub_DropsDeadSubscribers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := ws.NewHub()
	handler := NewEventHandler(hub)

	app := gin.New()
	app.GET("/ws", handler.HandleEventFeed)

	srv := httptest.NewServer(app)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	// the server notices the close and unregisters the connection
	require.Eventually(t, func() bool {
		return hub.Count() == 0
	}, time.Second, 10*time.Millisecond)
}
