package booking

import (
	"fmt"
	"time"

	"bikeshare-api/internal/domain/bike"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is the authoritative rental record. It is created exactly once by
// the reservation engine and never mutated here; status transitions out of
// active belong to an external process.
type Booking struct {
	id            uuid.UUID
	reference     string
	bikeID        uuid.UUID
	customerID    uuid.UUID
	customerEmail string
	window        TimeWindow
	createdAt     time.Time
	durationHours decimal.Decimal
	totalCost     decimal.Decimal
	status        Status
	// Denormalized from the bike at booking time so the record stays
	// meaningful if the bike is later repriced or recoded.
	bikeType   bike.Type
	accessCode string
}

func NewBooking(
	b *bike.Bike,
	customerID uuid.UUID,
	customerEmail string,
	window TimeWindow,
	quote Quote,
	createdAt time.Time,
) *Booking {
	id, reference := NewReference()

	return &Booking{
		id:            id,
		reference:     reference,
		bikeID:        b.ID(),
		customerID:    customerID,
		customerEmail: customerEmail,
		window:        window,
		createdAt:     createdAt,
		durationHours: quote.Hours,
		totalCost:     quote.Cost,
		status:        StatusActive,
		bikeType:      b.Type(),
		accessCode:    b.AccessCode(),
	}
}

func ReconstructBooking(
	id uuid.UUID,
	reference string,
	bikeID, customerID uuid.UUID,
	customerEmail string,
	window TimeWindow,
	createdAt time.Time,
	durationHours, totalCost decimal.Decimal,
	status Status,
	bikeType bike.Type,
	accessCode string,
) *Booking {
	return &Booking{
		id:            id,
		reference:     reference,
		bikeID:        bikeID,
		customerID:    customerID,
		customerEmail: customerEmail,
		window:        window,
		createdAt:     createdAt,
		durationHours: durationHours,
		totalCost:     totalCost,
		status:        status,
		bikeType:      bikeType,
		accessCode:    accessCode,
	}
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) Reference() string              { return b.reference }
func (b *Booking) BikeID() uuid.UUID              { return b.bikeID }
func (b *Booking) CustomerID() uuid.UUID          { return b.customerID }
func (b *Booking) CustomerEmail() string          { return b.customerEmail }
func (b *Booking) Window() TimeWindow             { return b.window }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) DurationHours() decimal.Decimal { return b.durationHours }
func (b *Booking) TotalCost() decimal.Decimal     { return b.totalCost }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) BikeType() bike.Type            { return b.bikeType }
func (b *Booking) AccessCode() string             { return b.accessCode }

// LookupRecord is the display-oriented projection of a Booking, keyed by its
// reference and consumed by the assistant's low-latency lookup path. It is
// advisory, never authoritative.
type LookupRecord struct {
	Reference      string `json:"booking_reference"`
	BikeType       string `json:"bike_type"`
	BikeNumber     string `json:"bike_number"`
	AccessCode     string `json:"access_code"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	RentalDuration string `json:"rental_duration"`
	Status         string `json:"status"`
}

// ToLookupRecord derives the projection from the authoritative record.
func (b *Booking) ToLookupRecord() LookupRecord {
	return LookupRecord{
		Reference:      b.reference,
		BikeType:       b.bikeType.String(),
		BikeNumber:     b.bikeID.String(),
		AccessCode:     b.accessCode,
		StartTime:      b.window.Start().Format(time.RFC3339),
		EndTime:        b.window.End().Format(time.RFC3339),
		RentalDuration: fmt.Sprintf("%s hours", b.durationHours.StringFixed(2)),
		Status:         b.status.String(),
	}
}
