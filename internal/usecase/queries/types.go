package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BikeView represents read-optimized bike data
type BikeView struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Available   bool            `json:"available"`
	Location    string          `json:"location"`
	Features    []string        `json:"features,omitempty"`
	FranchiseID uuid.UUID       `json:"franchise_id"`
}

// BookingListItem represents read-optimized booking data for listings
type BookingListItem struct {
	ID            uuid.UUID       `json:"id"`
	Reference     string          `json:"reference"`
	BikeID        uuid.UUID       `json:"bike_id"`
	BikeType      string          `json:"bike_type"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	DurationHours decimal.Decimal `json:"duration_hours"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
