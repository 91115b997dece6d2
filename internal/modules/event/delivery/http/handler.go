package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zidaf/inayaspace/internal/modules/event/dto"
	event "github.com/zidaf/inayaspace/internal/modules/event/service"
	"github.com/zidaf/inayaspace/pkg/response"
	"github.com/zidaf/inayaspace/pkg/validator"
)

type EventHandler struct {
	service event.Service
}

func NewEventHandler(service event.Service) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Create handles POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": created.ID, "event": created})
}

// Update handles PUT /api/events
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": updated})
}

// Delete handles DELETE /api/events?id=
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid id is required"})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
