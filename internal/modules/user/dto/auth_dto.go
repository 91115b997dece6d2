package dto

import "github.com/zidaf/inayaspace/internal/entity"

// AuthRequest is the action-dispatched body of POST /api/auth.
type AuthRequest struct {
	Action   string `json:"action" binding:"required,oneof=login logout verify"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *entity.User `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}
