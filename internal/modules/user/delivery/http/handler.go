package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zidaf/inayaspace/internal/middleware"
	"github.com/zidaf/inayaspace/internal/modules/user/dto"
	user "github.com/zidaf/inayaspace/internal/modules/user/service"
	"github.com/zidaf/inayaspace/pkg/response"
	"github.com/zidaf/inayaspace/pkg/validator"
)

type AuthHandler struct {
	service user.AuthService
}

func NewAuthHandler(service user.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// HandleAuth dispatches POST /api/auth on the action field.
func (h *AuthHandler) HandleAuth(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	switch req.Action {
	case "login":
		resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)

	case "verify":
		u, err := h.service.Verify(c.Request.Context(), middleware.Token(c))
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AuthResponse{Success: true, User: u})

	case "logout":
		if err := h.service.Logout(c.Request.Context(), middleware.Token(c)); err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ChangePassword handles POST /api/change-password (authenticated).
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	u, err := response.GetUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), u, middleware.Token(c), req.CurrentPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
