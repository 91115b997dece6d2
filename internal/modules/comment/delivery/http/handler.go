package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zidaf/inayaspace/internal/modules/comment/dto"
	comment "github.com/zidaf/inayaspace/internal/modules/comment/service"
	"github.com/zidaf/inayaspace/pkg/response"
	"github.com/zidaf/inayaspace/pkg/validator"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /api/comments?content_type=&content_id=
func (h *CommentHandler) List(c *gin.Context) {
	contentType := c.Query("content_type")
	contentID, err := uuid.Parse(c.Query("content_id"))
	if contentType == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content_type and content_id are required"})
		return
	}

	comments, err := h.service.ListForContent(c.Request.Context(), contentType, contentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
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

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": created})
}

// Update handles PUT /api/comments
func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), user, req); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /api/comments (comment_id in body, as the SPA sends it)
func (h *CommentHandler) Delete(c *gin.Context) {
	var req dto.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, req.CommentID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
