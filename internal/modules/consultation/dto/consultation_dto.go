package dto

import "github.com/google/uuid"

// ConsultationRequest is the action-dispatched body of POST /api/consultations.
type ConsultationRequest struct {
	Action           string    `json:"action" binding:"required,oneof=get add update delete"`
	ID               uuid.UUID `json:"id"`
	Location         string    `json:"location"`
	Practitioner     string    `json:"practitioner"`
	ConsultationDate string    `json:"consultation_date"`
	Time             string    `json:"time"`
	Notes            string    `json:"notes"`
}
