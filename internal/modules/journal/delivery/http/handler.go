package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zidaf/inayaspace/internal/modules/journal/dto"
	journal "github.com/zidaf/inayaspace/internal/modules/journal/service"
	"github.com/zidaf/inayaspace/pkg/response"
	"github.com/zidaf/inayaspace/pkg/validator"
)

type JournalHandler struct {
	service journal.Service
}

func NewJournalHandler(service journal.Service) *JournalHandler {
	return &JournalHandler{service: service}
}

// List handles GET /api/journal
func (h *JournalHandler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create handles POST /api/journal
func (h *JournalHandler) Create(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": entry.ID, "entry": entry})
}

// Update handles PUT /api/journal
func (h *JournalHandler) Update(c *gin.Context) {
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := h.service.Update(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// Delete handles DELETE /api/journal?id=
func (h *JournalHandler) Delete(c *gin.Context) {
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
