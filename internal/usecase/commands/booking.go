package commands

import (
	"context"
	"log/slog"
	"time"

	"bikeshare-api/internal/domain/bike"
	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/pkg/clock"
	"bikeshare-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBikeNotFound     = errs.New("bike not found")
	ErrBikeUnavailable  = errs.New("bike unavailable")
	ErrBookingConflict  = errs.New("booking conflict")
	ErrInvalidWindow    = errs.New("invalid booking window")
	ErrStorageFailure   = errs.New("storage operation failed")
	ErrInvalidBikeState = errs.New("invalid bike record")
)

const notificationBookingConfirmed = "BOOKING_CONFIRMATION"

type CreateBookingInput struct {
	BikeID        uuid.UUID
	CustomerID    uuid.UUID
	CustomerEmail string
	Start         time.Time
	End           time.Time
}

type BookingResult struct {
	BookingID     uuid.UUID
	Reference     string
	TotalCost     decimal.Decimal
	DurationHours decimal.Decimal
	AccessCode    string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	bikes    BikeReader
	bookings BookingRepository
	lookup   LookupWriter
	notifier Notifier
	clock    clock.Clock
}

func NewBookingCommands(
	bikes BikeReader,
	bookings BookingRepository,
	lookup LookupWriter,
	notifier Notifier,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bikes:    bikes,
		bookings: bookings,
		lookup:   lookup,
		notifier: notifier,
		clock:    clk,
	}
}

// CreateBooking runs the reservation sequence: validate the window, fetch
// the bike, check the administrative flag, detect schedule conflicts, quote
// the rental, then write the booking followed by its lookup projection and a
// confirmation notification. Everything after the booking write is best
// effort; only the booking itself decides success.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error) {
	// Malformed windows are client errors surfaced before any store is hit.
	window, err := booking.NewTimeWindow(in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	bikeEntity, err := b.fetchBike(ctx, in.BikeID)
	if err != nil {
		return nil, err
	}

	if !bikeEntity.Available() {
		return nil, ErrBikeUnavailable
	}

	slots, err := b.bookings.FindSlotsByBike(ctx, in.BikeID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	if booking.HasConflict(window, slots) {
		return nil, ErrBookingConflict
	}

	quote := booking.NewQuote(window.Duration(), bikeEntity.HourlyRate())
	bookingEntity := booking.NewBooking(bikeEntity, in.CustomerID, in.CustomerEmail, window, quote, b.clock.Now())

	// The conflict check above is advisory under concurrency; the store's
	// conditional write is what actually guarantees the invariant.
	if err := b.bookings.Create(ctx, bookingEntity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	// The booking is authoritative from here on: projection and
	// notification failures are logged, never returned.
	if err := b.lookup.Put(ctx, bookingEntity.ToLookupRecord()); err != nil {
		slog.Warn("failed to write booking lookup record",
			"booking_reference", bookingEntity.Reference(),
			"error", err.Error())
	}

	b.sendConfirmation(ctx, bookingEntity)

	return &BookingResult{
		BookingID:     bookingEntity.ID(),
		Reference:     bookingEntity.Reference(),
		TotalCost:     bookingEntity.TotalCost(),
		DurationHours: bookingEntity.DurationHours(),
		AccessCode:    bookingEntity.AccessCode(),
	}, nil
}

func (b *bookingCommandsImpl) fetchBike(ctx context.Context, id uuid.UUID) (*bike.Bike, error) {
	snapshot, err := b.bikes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBikeNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	bikeType, err := bike.NewType(snapshot.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBikeState)
	}

	return bike.ReconstructBike(
		snapshot.ID,
		bikeType,
		snapshot.HourlyRate,
		snapshot.AccessCode,
		snapshot.Available,
		snapshot.Location,
		snapshot.Features,
		snapshot.FranchiseID,
	), nil
}

func (b *bookingCommandsImpl) sendConfirmation(ctx context.Context, bk *booking.Booking) {
	payload := map[string]any{
		"notificationType": notificationBookingConfirmed,
		"userId":           bk.CustomerID().String(),
		"userEmail":        bk.CustomerEmail(),
		"messageData": map[string]any{
			"bookingReference": bk.Reference(),
			"bikeType":         bk.BikeType().String(),
			"startTime":        bk.Window().Start().Format(time.RFC3339),
			"endTime":          bk.Window().End().Format(time.RFC3339),
		},
	}

	if err := b.notifier.Dispatch(ctx, notificationBookingConfirmed, bk.CustomerEmail(), payload); err != nil {
		slog.Warn("failed to dispatch booking confirmation",
			"booking_reference", bk.Reference(),
			"error", err.Error())
	}
}
