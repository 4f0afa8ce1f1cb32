package queries

import (
	"context"
	"log/slog"
	"time"

	"bikeshare-api/internal/domain/bike"
	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidWindow = errs.New("invalid availability window")

// Reasons a window is reported unavailable.
const (
	ReasonBikeUnavailable = "bike_unavailable"
	ReasonWindowConflict  = "window_conflict"
)

type AvailabilityResult struct {
	BikeID    uuid.UUID `json:"bike_id"`
	Start     time.Time `json:"start_time"`
	End       time.Time `json:"end_time"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
}

type AvailabilityQueries interface {
	// CheckAvailability reports whether the bike can be booked for the
	// window. The answer is advisory: a concurrent booking can invalidate it
	// before the caller acts on it.
	CheckAvailability(ctx context.Context, bikeID uuid.UUID, start, end time.Time) (*AvailabilityResult, error)
	// SearchAvailable lists bikes that can be booked, optionally narrowed by
	// type and by a time window. Start and end must be given together.
	SearchAvailable(ctx context.Context, typeFilter string, start, end *time.Time) ([]*BikeView, error)
}

type BookingSlotReader interface {
	FindSlotsByBike(ctx context.Context, bikeID uuid.UUID) ([]booking.Slot, error)
}

type availabilityQueriesImpl struct {
	bikes BikeReadStore
	slots BookingSlotReader
}

func NewAvailabilityQueries(bikes BikeReadStore, slots BookingSlotReader) AvailabilityQueries {
	return &availabilityQueriesImpl{bikes: bikes, slots: slots}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, bikeID uuid.UUID, start, end time.Time) (*AvailabilityResult, error) {
	window, err := booking.NewTimeWindow(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	view, err := q.bikes.FindByID(ctx, bikeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBikeNotFound
		}
		return nil, err
	}

	result := &AvailabilityResult{
		BikeID: bikeID,
		Start:  window.Start(),
		End:    window.End(),
	}

	if !view.Available {
		result.Reason = ReasonBikeUnavailable
		return result, nil
	}

	slots, err := q.slots.FindSlotsByBike(ctx, bikeID)
	if err != nil {
		return nil, err
	}

	if booking.HasConflict(window, slots) {
		result.Reason = ReasonWindowConflict
		return result, nil
	}

	result.Available = true
	return result, nil
}

func (q *availabilityQueriesImpl) SearchAvailable(ctx context.Context, typeFilter string, start, end *time.Time) ([]*BikeView, error) {
	var window *booking.TimeWindow
	switch {
	case start != nil && end != nil:
		w, err := booking.NewTimeWindow(*start, *end)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidWindow)
		}
		window = &w
	case start != nil || end != nil:
		return nil, ErrInvalidWindow
	}

	var (
		views []*BikeView
		err   error
	)
	if typeFilter != "" {
		if _, err = bike.NewType(typeFilter); err != nil {
			return nil, errs.Mark(err, ErrInvalidTypeName)
		}
		views, err = q.bikes.FindByType(ctx, typeFilter)
	} else {
		views, err = q.bikes.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*BikeView, 0, len(views))
	for _, view := range views {
		if !view.Available {
			continue
		}
		// A corrupt entry disqualifies the bike, never the whole query.
		if _, err := bike.NewType(view.Type); err != nil {
			continue
		}
		if view.HourlyRate.IsNegative() {
			continue
		}

		if window != nil {
			slots, err := q.slots.FindSlotsByBike(ctx, view.ID)
			if err != nil {
				slog.Warn("failed to load booking slots, skipping bike",
					"bike_id", view.ID.String(), "error", err)
				continue
			}
			if booking.HasConflict(*window, slots) {
				continue
			}
		}

		out = append(out, view)
	}
	return out, nil
}
