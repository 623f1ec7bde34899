package httpHandler

import (
	"net/http"

	"station-server/handlers"
	"station-server/usecases"

	"github.com/gin-gonic/gin"
)

type StationHandler struct {
	useCase *usecases.StationUseCase
	events  *handlers.EventHandler
}

func NewStationHandler(useCase *usecases.StationUseCase, events *handlers.EventHandler) *StationHandler {
	return &StationHandler{useCase: useCase, events: events}
}

// ListStations handles GET /api/stations
func (h *StationHandler) ListStations(c *gin.Context) {
	stations, err := h.useCase.List()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stations)
}

// GetStation handles GET /api/stations/:id
func (h *StationHandler) GetStation(c *gin.Context) {
	station, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, station)
}

// CreateStation handles POST /api/stations. The owner is always the
// authenticated caller; any owner in the payload is ignored.
func (h *StationHandler) CreateStation(c *gin.Context) {
	callerID, ok := CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is not valid"})
		return
	}

	var input usecases.CreateStationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	station, err := h.useCase.Create(callerID, input)
	if err != nil {
		writeError(c, err)
		return
	}

	h.events.StationCreated(station)
	c.JSON(http.StatusCreated, station)
}

// UpdateStation handles PUT /api/stations/:id
func (h *StationHandler) UpdateStation(c *gin.Context) {
	callerID, ok := CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is not valid"})
		return
	}

	var input usecases.UpdateStationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	station, err := h.useCase.Update(c.Param("id"), callerID, input)
	if err != nil {
		writeError(c, err)
		return
	}

	h.events.StationUpdated(station)
	c.JSON(http.StatusOK, station)
}

// DeleteStation handles DELETE /api/stations/:id
func (h *StationHandler) DeleteStation(c *gin.Context) {
	callerID, ok := CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is not valid"})
		return
	}

	id := c.Param("id")
	if err := h.useCase.Delete(id, callerID); err != nil {
		writeError(c, err)
		return
	}

	h.events.StationDeleted(id)
	c.JSON(http.StatusOK, gin.H{"message": "station removed"})
}
