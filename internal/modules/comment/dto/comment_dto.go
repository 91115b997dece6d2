package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/zidaf/inayaspace/internal/entity"
)

type CreateCommentRequest struct {
	ContentType string    `json:"content_type" binding:"required,oneof=photos videos journal consultations events"`
	ContentID   uuid.UUID `json:"content_id" binding:"required"`
	Text        string    `json:"comment_text" binding:"required"`
}

type UpdateCommentRequest struct {
	CommentID uuid.UUID `json:"comment_id" binding:"required"`
	Text      string    `json:"comment_text" binding:"required"`
}

type DeleteCommentRequest struct {
	CommentID uuid.UUID `json:"comment_id" binding:"required"`
}

// CommentResponse is a comment joined with its author's account.
type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ContentType string    `json:"content_type"`
	ContentID   uuid.UUID `json:"content_id"`
	Text        string    `json:"comment_text"`
	Email       string    `json:"email"`
	UserType    string    `json:"user_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCommentResponse(comment *entity.Comment, user *entity.User) CommentResponse {
	resp := CommentResponse{
		ID:          comment.ID,
		UserID:      comment.UserID,
		ContentType: comment.ContentType,
		ContentID:   comment.ContentID,
		Text:        comment.Text,
		CreatedAt:   comment.CreatedAt,
		UpdatedAt:   comment.UpdatedAt,
	}
	if user != nil {
		resp.Email = user.Email
		resp.UserType = user.Role
	}
	return resp
}
