package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	search "github.com/zidaf/inayaspace/internal/modules/search/service"
	"github.com/zidaf/inayaspace/pkg/response"
)

type SearchHandler struct {
	service search.Service
}

func NewSearchHandler(service search.Service) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search handles GET /api/search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	docs, err := h.service.Search(c.Request.Context(), query, 20)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": docs})
}
