package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	attachment "github.com/zidaf/inayaspace/internal/modules/attachment/service"
	"github.com/zidaf/inayaspace/pkg/response"
)

type AttachmentHandler struct {
	service attachment.Service
}

func NewAttachmentHandler(service attachment.Service) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

// Upload handles POST /api/upload (multipart, field "file").
func (h *AttachmentHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	url, err := h.service.Upload(c.Request.Context(), user, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
