package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zidaf/inayaspace/internal/modules/consultation/dto"
	consultation "github.com/zidaf/inayaspace/internal/modules/consultation/service"
	"github.com/zidaf/inayaspace/pkg/response"
	"github.com/zidaf/inayaspace/pkg/validator"
)

type ConsultationHandler struct {
	service consultation.Service
}

func NewConsultationHandler(service consultation.Service) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

// Handle dispatches POST /api/consultations on the action field.
func (h *ConsultationHandler) Handle(c *gin.Context) {
	var req dto.ConsultationRequest
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
		consultations, err := h.service.List(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "consultations": consultations})

	case "add":
		created, err := h.service.Add(c.Request.Context(), user, req)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "id": created.ID, "consultation": created})

	case "update":
		updated, err := h.service.Update(c.Request.Context(), user, req)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "consultation": updated})

	case "delete":
		if err := h.service.Delete(c.Request.Context(), user, req.ID); err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
