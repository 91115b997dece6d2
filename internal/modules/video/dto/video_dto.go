package dto

import "github.com/google/uuid"

type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required"`
	Category    string `json:"category"`
}

type UpdateVideoRequest struct {
	ID          uuid.UUID `json:"id" binding:"required"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
}
