package dto

import "github.com/google/uuid"

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Location    string `json:"location"`
}

type UpdateEventRequest struct {
	ID          uuid.UUID `json:"id" binding:"required"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
}
