package dto

import "github.com/google/uuid"

type CreateEntryRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Mood    string `json:"mood"`
	Date    string `json:"date"`
}

type UpdateEntryRequest struct {
	ID      uuid.UUID `json:"id" binding:"required"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Mood    string    `json:"mood"`
	Date    string    `json:"date"`
}
