//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBikeReadStore struct {
	views map[uuid.UUID]*queries.BikeView
}

func (f *fakeBikeReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BikeView, error) {
	v, ok := f.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("bike not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (f *fakeBikeReadStore) FindAll(_ context.Context) ([]*queries.BikeView, error) {
	out := make([]*queries.BikeView, 0, len(f.views))
	for _, v := range f.views {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeBikeReadStore) FindByType(_ context.Context, bikeType string) ([]*queries.BikeView, error) {
	var out []*queries.BikeView
	for _, v := range f.views {
		if v.Type == bikeType {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeSlotReader struct {
	slots  map[uuid.UUID][]booking.Slot
	err    error
	errFor map[uuid.UUID]error
}

func (f *fakeSlotReader) FindSlotsByBike(_ context.Context, bikeID uuid.UUID) ([]booking.Slot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err, ok := f.errFor[bikeID]; ok {
		return nil, err
	}
	return f.slots[bikeID], nil
}

func at(hour int) time.Time {
	return time.Date(2024, 6, 1, hour, 0, 0, 0, time.UTC)
}

func slot(t *testing.T, startHour, endHour int, status booking.Status) booking.Slot {
	t.Helper()
	w, err := booking.NewTimeWindow(at(startHour), at(endHour))
	require.NoError(t, err)
	return booking.Slot{Window: w, Status: status}
}

func TestCheckAvailability(t *testing.T) {
	bikeID := uuid.New()

	newFixture := func(available bool, slots []booking.Slot) queries.AvailabilityQueries {
		bikes := &fakeBikeReadStore{views: map[uuid.UUID]*queries.BikeView{
			bikeID: {
				ID:         bikeID,
				Type:       "scooter",
				HourlyRate: decimal.RequireFromString("5.00"),
				Available:  available,
			},
		}}
		return queries.NewAvailabilityQueries(bikes, &fakeSlotReader{
			slots: map[uuid.UUID][]booking.Slot{bikeID: slots},
		})
	}

	t.Run("free window on an available bike", func(t *testing.T) {
		q := newFixture(true, []booking.Slot{slot(t, 10, 12, booking.StatusActive)})

		result, err := q.CheckAvailability(context.Background(), bikeID, at(13), at(15))
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Empty(t, result.Reason)
	})

	t.Run("overlapping active booking blocks", func(t *testing.T) {
		q := newFixture(true, []booking.Slot{slot(t, 10, 12, booking.StatusActive)})

		result, err := q.CheckAvailability(context.Background(), bikeID, at(11), at(13))
		require.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, queries.ReasonWindowConflict, result.Reason)
	})

	t.Run("adjacent window is bookable", func(t *testing.T) {
		q := newFixture(true, []booking.Slot{slot(t, 10, 12, booking.StatusActive)})

		result, err := q.CheckAvailability(context.Background(), bikeID, at(12), at(13))
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		q := newFixture(true, []booking.Slot{slot(t, 10, 12, booking.StatusCancelled)})

		result, err := q.CheckAvailability(context.Background(), bikeID, at(10), at(12))
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("administrative flag wins over a clear schedule", func(t *testing.T) {
		q := newFixture(false, nil)

		result, err := q.CheckAvailability(context.Background(), bikeID, at(10), at(12))
		require.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, queries.ReasonBikeUnavailable, result.Reason)
	})

	t.Run("invalid window", func(t *testing.T) {
		q := newFixture(true, nil)

		_, err := q.CheckAvailability(context.Background(), bikeID, at(12), at(10))
		assert.ErrorIs(t, err, queries.ErrInvalidWindow)
	})

	t.Run("unknown bike", func(t *testing.T) {
		q := newFixture(true, nil)

		_, err := q.CheckAvailability(context.Background(), uuid.New(), at(10), at(12))
		assert.ErrorIs(t, err, queries.ErrBikeNotFound)
	})
}

func TestSearchAvailable(t *testing.T) {
	freeID, bookedID, offID, corruptID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	newFixture := func(slotErrs map[uuid.UUID]error) queries.AvailabilityQueries {
		bikes := &fakeBikeReadStore{views: map[uuid.UUID]*queries.BikeView{
			freeID:    {ID: freeID, Type: "scooter", HourlyRate: decimal.RequireFromString("5.00"), Available: true},
			bookedID:  {ID: bookedID, Type: "ebike", HourlyRate: decimal.RequireFromString("8.00"), Available: true},
			offID:     {ID: offID, Type: "scooter", HourlyRate: decimal.RequireFromString("5.00"), Available: false},
			corruptID: {ID: corruptID, Type: "unicycle", HourlyRate: decimal.RequireFromString("5.00"), Available: true},
		}}
		return queries.NewAvailabilityQueries(bikes, &fakeSlotReader{
			slots: map[uuid.UUID][]booking.Slot{
				bookedID: {slot(t, 10, 12, booking.StatusActive)},
			},
			errFor: slotErrs,
		})
	}

	start, end := at(11), at(13)

	t.Run("no window lists every bookable bike", func(t *testing.T) {
		q := newFixture(nil)

		views, err := q.SearchAvailable(context.Background(), "", nil, nil)
		require.NoError(t, err)
		require.Len(t, views, 2)
		got := map[uuid.UUID]bool{}
		for _, v := range views {
			got[v.ID] = true
		}
		assert.True(t, got[freeID])
		assert.True(t, got[bookedID])
	})

	t.Run("window drops the conflicting bike", func(t *testing.T) {
		q := newFixture(nil)

		views, err := q.SearchAvailable(context.Background(), "", &start, &end)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, freeID, views[0].ID)
	})

	t.Run("type filter narrows the search", func(t *testing.T) {
		q := newFixture(nil)

		views, err := q.SearchAvailable(context.Background(), "ebike", nil, nil)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, bookedID, views[0].ID)
	})

	t.Run("unknown type filter is rejected", func(t *testing.T) {
		q := newFixture(nil)

		_, err := q.SearchAvailable(context.Background(), "hoverboard", nil, nil)
		assert.ErrorIs(t, err, queries.ErrInvalidTypeName)
	})

	t.Run("half a window is rejected", func(t *testing.T) {
		q := newFixture(nil)

		_, err := q.SearchAvailable(context.Background(), "", &start, nil)
		assert.ErrorIs(t, err, queries.ErrInvalidWindow)
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		q := newFixture(nil)

		_, err := q.SearchAvailable(context.Background(), "", &end, &start)
		assert.ErrorIs(t, err, queries.ErrInvalidWindow)
	})

	t.Run("slot read failure skips the bike, not the query", func(t *testing.T) {
		q := newFixture(map[uuid.UUID]error{
			freeID: infra.WrapRepoErr("scan failed", nil),
		})

		views, err := q.SearchAvailable(context.Background(), "", &start, &end)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestListBikes(t *testing.T) {
	scooterID, ebikeID := uuid.New(), uuid.New()
	bikes := &fakeBikeReadStore{views: map[uuid.UUID]*queries.BikeView{
		scooterID: {ID: scooterID, Type: "scooter"},
		ebikeID:   {ID: ebikeID, Type: "ebike"},
	}}
	q := queries.NewBikeQueries(bikes)

	t.Run("no filter returns the fleet", func(t *testing.T) {
		views, err := q.ListBikes(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("type filter narrows", func(t *testing.T) {
		views, err := q.ListBikes(context.Background(), "ebike")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, ebikeID, views[0].ID)
	})

	t.Run("unknown type filter is rejected", func(t *testing.T) {
		_, err := q.ListBikes(context.Background(), "hoverboard")
		assert.ErrorIs(t, err, queries.ErrInvalidTypeName)
	})
}
