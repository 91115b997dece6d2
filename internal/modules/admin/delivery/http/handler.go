package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zidaf/inayaspace/internal/modules/admin/dto"
	admin "github.com/zidaf/inayaspace/internal/modules/admin/service"
	"github.com/zidaf/inayaspace/pkg/response"
	"github.com/zidaf/inayaspace/pkg/validator"
)

type AdminHandler struct {
	service admin.Service
}

func NewAdminHandler(service admin.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// Get handles GET /api/admin?action=stats|config|logs
func (h *AdminHandler) Get(c *gin.Context) {
	switch c.Query("action") {
	case "stats":
		stats, err := h.service.Stats(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats})

	case "config":
		config, err := h.service.GetConfig(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"config": config})

	case "logs":
		logs, err := h.service.Logs(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"logs": logs})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be stats, config or logs"})
	}
}

// Post handles POST /api/admin with an action field.
func (h *AdminHandler) Post(c *gin.Context) {
	var req dto.AdminRequest
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
	case "update_config":
		if err := h.service.UpdateConfig(c.Request.Context(), user, req.Key, req.Value); err != nil {
			response.Error(c, err)
			return
		}
	case "manage_content":
		if err := h.service.ManageContent(c.Request.Context(), user, req); err != nil {
			response.Error(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
