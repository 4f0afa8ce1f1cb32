package response

import (
	"bikeshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BikeResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	HourlyRate  string    `json:"hourlyRate"`
	Available   bool      `json:"available"`
	Location    string    `json:"location,omitempty"`
	Features    []string  `json:"features,omitempty"`
	FranchiseID uuid.UUID `json:"franchiseId"`
}

type AddBikeResponse struct {
	BikeID     uuid.UUID `json:"bikeId"`
	AccessCode string    `json:"accessCode"`
}

func FromBikeView(view *queries.BikeView) *BikeResponse {
	resp := &BikeResponse{}
	_ = copier.Copy(resp, view)
	resp.HourlyRate = view.HourlyRate.StringFixed(2)
	return resp
}

func FromBikeViews(views []*queries.BikeView) []*BikeResponse {
	out := make([]*BikeResponse, len(views))
	for i, v := range views {
		out[i] = FromBikeView(v)
	}
	return out
}
