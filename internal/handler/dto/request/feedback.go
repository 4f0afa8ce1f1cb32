package request

import "github.com/google/uuid"

type SubmitFeedbackRequest struct {
	BikeID   uuid.UUID `json:"bike_id" binding:"required"`
	UserType string    `json:"user_type,omitempty"`
	Text     string    `json:"text" binding:"required"`
}

type SubmitConcernRequest struct {
	BookingReference string `json:"booking_reference" binding:"required"`
	Description      string `json:"description" binding:"required"`
}

type AskAssistantRequest struct {
	Question string `json:"question" binding:"required"`
}
