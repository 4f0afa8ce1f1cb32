package response

import (
	"time"

	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LookupResponse struct {
	Reference      string `json:"bookingReference"`
	BikeType       string `json:"bikeType"`
	BikeNumber     string `json:"bikeNumber"`
	AccessCode     string `json:"accessCode"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	RentalDuration string `json:"rentalDuration"`
	Status         string `json:"status"`
}

type AnswerResponse struct {
	Answer string `json:"answer"`
}

type FeedbackResponse struct {
	FeedbackID uuid.UUID `json:"feedbackId"`
	Sentiment  string    `json:"sentiment"`
}

type FeedbackListItem struct {
	ID        uuid.UUID `json:"id"`
	BikeID    uuid.UUID `json:"bikeId"`
	UserType  string    `json:"userType,omitempty"`
	Text      string    `json:"text"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"createdAt"`
}

type ConcernResponse struct {
	TicketID uuid.UUID `json:"ticketId"`
}

func FromLookupRecord(rec *booking.LookupRecord) *LookupResponse {
	resp := &LookupResponse{}
	_ = copier.Copy(resp, rec)
	return resp
}

func FromFeedbackViews(views []*queries.FeedbackView) []*FeedbackListItem {
	out := make([]*FeedbackListItem, len(views))
	for i, v := range views {
		item := &FeedbackListItem{}
		_ = copier.Copy(item, v)
		out[i] = item
	}
	return out
}
