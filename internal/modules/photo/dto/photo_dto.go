package dto

import "github.com/google/uuid"

// PhotoRequest is the action-dispatched body of POST /api/photos.
type PhotoRequest struct {
	Action      string    `json:"action" binding:"required,oneof=get add update delete"`
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	TakenAt     string    `json:"taken_at"`
	Location    string    `json:"location"`
}
