package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zidaf/inayaspace/internal/modules/like/dto"
	like "github.com/zidaf/inayaspace/internal/modules/like/service"
	"github.com/zidaf/inayaspace/pkg/response"
	"github.com/zidaf/inayaspace/pkg/validator"
)

type LikeHandler struct {
	service like.Service
}

func NewLikeHandler(service like.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// Get handles GET /api/likes?content_type=&content_id=
func (h *LikeHandler) Get(c *gin.Context) {
	contentType := c.Query("content_type")
	contentID, err := uuid.Parse(c.Query("content_id"))
	if contentType == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content_type and content_id are required"})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	likes, err := h.service.GetLikes(c.Request.Context(), user, contentType, contentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// Like handles POST /api/likes
func (h *LikeHandler) Like(c *gin.Context) {
	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Like(c.Request.Context(), user, req); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Unlike handles DELETE /api/likes
func (h *LikeHandler) Unlike(c *gin.Context) {
	var req dto.UnlikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Unlike(c.Request.Context(), user, req); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
