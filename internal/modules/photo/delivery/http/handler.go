package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zidaf/inayaspace/internal/modules/photo/dto"
	photo "github.com/zidaf/inayaspace/internal/modules/photo/service"
	"github.com/zidaf/inayaspace/pkg/response"
	"github.com/zidaf/inayaspace/pkg/validator"
)

type PhotoHandler struct {
	service photo.Service
}

func NewPhotoHandler(service photo.Service) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// Handle dispatches POST /api/photos on the action field.
func (h *PhotoHandler) Handle(c *gin.Context) {
	var req dto.PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch req.Action {
	case "get":
		photos, err := h.service.List(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "photos": photos})

	case "add":
		created, err := h.service.Add(c.Request.Context(), user, req)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "id": created.ID, "photo": created})

	case "update":
		updated, err := h.service.Update(c.Request.Context(), user, req)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "photo": updated})

	case "delete":
		if err := h.service.Delete(c.Request.Context(), user, req.ID); err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
