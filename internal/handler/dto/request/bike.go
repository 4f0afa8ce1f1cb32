package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddBikeRequest struct {
	Type        string    `json:"type" binding:"required"`
	HourlyRate  string    `json:"hourly_rate" binding:"required"`
	Available   *bool     `json:"available,omitempty"`
	Location    string    `json:"location,omitempty"`
	Features    []string  `json:"features,omitempty"`
	FranchiseID uuid.UUID `json:"franchise_id" binding:"required"`
}

// ParseRate validates the decimal rate string.
func (r AddBikeRequest) ParseRate() (decimal.Decimal, error) {
	return decimal.NewFromString(r.HourlyRate)
}

// IsAvailable defaults newly added bikes to available.
func (r AddBikeRequest) IsAvailable() bool {
	if r.Available == nil {
		return true
	}
	return *r.Available
}

type UpdateBikeRequest struct {
	HourlyRate *string   `json:"hourly_rate,omitempty"`
	Available  *bool     `json:"available,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Features   *[]string `json:"features,omitempty"`
}
