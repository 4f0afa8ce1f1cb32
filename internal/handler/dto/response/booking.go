package response

import (
	"time"

	"bikeshare-api/internal/usecase/commands"
	"bikeshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	Reference     string    `json:"bookingReference"`
	TotalCost     string    `json:"totalCost"`
	DurationHours string    `json:"durationHours"`
	AccessCode    string    `json:"accessCode"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	Reference     string    `json:"bookingReference"`
	BikeID        uuid.UUID `json:"bikeId"`
	BikeType      string    `json:"bikeType"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	DurationHours string    `json:"durationHours"`
	TotalCost     string    `json:"totalCost"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	BikeID    uuid.UUID `json:"bikeId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
}

func FromBookingResult(result *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		BookingID:     result.BookingID,
		Reference:     result.Reference,
		TotalCost:     result.TotalCost.StringFixed(2),
		DurationHours: result.DurationHours.StringFixed(2),
		AccessCode:    result.AccessCode,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	resp := &BookingListResponse{}
	_ = copier.Copy(resp, item)
	resp.DurationHours = item.DurationHours.StringFixed(2)
	resp.TotalCost = item.TotalCost.StringFixed(2)
	return resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, len(items))
	for i, item := range items {
		out[i] = FromBookingListItem(item)
	}
	return out
}

func FromAvailabilityResult(result *queries.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		BikeID:    result.BikeID,
		StartTime: result.Start,
		EndTime:   result.End,
		Available: result.Available,
		Reason:    result.Reason,
	}
}
