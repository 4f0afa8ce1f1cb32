package commands

import (
	"context"
	"time"

	"bikeshare-api/internal/domain/bike"
	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type BikeSnapshot struct {
	ID          uuid.UUID
	Type        string
	HourlyRate  decimal.Decimal
	AccessCode  string
	Available   bool
	Location    string
	Features    []string
	FranchiseID uuid.UUID
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

// BikePatch carries the whitelisted updatable fields; nil means "leave as is".
type BikePatch struct {
	HourlyRate *decimal.Decimal
	Available  *bool
	Location   *string
	Features   *[]string
}

type BikeReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BikeSnapshot, error)
}

type BikeRepository interface {
	Create(ctx context.Context, b *bike.Bike) error
	Update(ctx context.Context, id uuid.UUID, patch BikePatch) error
}

type BookingRepository interface {
	// Create persists an active booking. Implementations must reject a
	// booking whose window overlaps an existing active booking for the same
	// bike (conditional write) and surface that as infra.KindConflict.
	Create(ctx context.Context, b *booking.Booking) error
	FindSlotsByBike(ctx context.Context, bikeID uuid.UUID) ([]booking.Slot, error)
}

// LookupWriter maintains the advisory, display-only projection. Its writes
// are ordered after the authoritative booking write and their failures are
// suppressed.
type LookupWriter interface {
	Put(ctx context.Context, rec booking.LookupRecord) error
}

// Notifier dispatches out-of-band messages. At-most-once, best effort:
// callers log and swallow its errors.
type Notifier interface {
	Dispatch(ctx context.Context, kind string, recipient string, payload any) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type FeedbackRecord struct {
	ID        uuid.UUID
	BikeID    uuid.UUID
	UserType  string
	Text      string
	Sentiment string
	CreatedAt time.Time
}

type ConcernTicket struct {
	ID          uuid.UUID
	Reference   string
	Description string
	Status      string
	CreatedAt   time.Time
}

type FeedbackRepository interface {
	Create(ctx context.Context, rec FeedbackRecord) error
}

type ConcernRepository interface {
	Create(ctx context.Context, ticket ConcernTicket) error
}
