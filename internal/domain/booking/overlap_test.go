//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bikeshare-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, start, end string) booking.TimeWindow {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	w, err := booking.NewTimeWindow(s, e)
	require.NoError(t, err)
	return w
}

func TestTimeWindow(t *testing.T) {
	t.Run("rejects start equal to end", func(t *testing.T) {
		at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		_, err := booking.NewTimeWindow(at, at)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeWindow)
	})

	t.Run("rejects start after end", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		_, err := booking.NewTimeWindow(start, end)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeWindow)
	})

	t.Run("past windows are allowed", func(t *testing.T) {
		// Scheduling only requires start < end; there is no lead-time rule.
		_, err := booking.NewTimeWindow(
			time.Date(2020, 6, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC),
		)
		assert.NoError(t, err)
	})
}

func TestTimeWindowOverlaps(t *testing.T) {
	base := window(t, "2024-01-01T10:00:00Z", "2024-01-01T12:00:00Z")

	cases := []struct {
		name     string
		other    booking.TimeWindow
		overlaps bool
	}{
		{
			name:     "identical windows overlap",
			other:    window(t, "2024-01-01T10:00:00Z", "2024-01-01T12:00:00Z"),
			overlaps: true,
		},
		{
			name:     "partial overlap at tail",
			other:    window(t, "2024-01-01T11:00:00Z", "2024-01-01T13:00:00Z"),
			overlaps: true,
		},
		{
			name:     "partial overlap at head",
			other:    window(t, "2024-01-01T09:00:00Z", "2024-01-01T11:00:00Z"),
			overlaps: true,
		},
		{
			name:     "fully contained",
			other:    window(t, "2024-01-01T10:30:00Z", "2024-01-01T11:30:00Z"),
			overlaps: true,
		},
		{
			name:     "fully containing",
			other:    window(t, "2024-01-01T09:00:00Z", "2024-01-01T13:00:00Z"),
			overlaps: true,
		},
		{
			// Half-open semantics: ending exactly at the other's start is
			// never a conflict.
			name:     "adjacent before",
			other:    window(t, "2024-01-01T08:00:00Z", "2024-01-01T10:00:00Z"),
			overlaps: false,
		},
		{
			name:     "adjacent after",
			other:    window(t, "2024-01-01T12:00:00Z", "2024-01-01T14:00:00Z"),
			overlaps: false,
		},
		{
			name:     "disjoint",
			other:    window(t, "2024-01-02T10:00:00Z", "2024-01-02T12:00:00Z"),
			overlaps: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			// Overlap is symmetric.
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base))
		})
	}
}

func TestHasConflict(t *testing.T) {
	requested := window(t, "2024-01-01T11:00:00Z", "2024-01-01T13:00:00Z")

	t.Run("active overlapping slot conflicts", func(t *testing.T) {
		existing := []booking.Slot{
			{Window: window(t, "2024-01-01T10:00:00Z", "2024-01-01T12:00:00Z"), Status: booking.StatusActive},
		}
		assert.True(t, booking.HasConflict(requested, existing))
	})

	t.Run("non-active statuses are ignored", func(t *testing.T) {
		existing := []booking.Slot{
			{Window: window(t, "2024-01-01T10:00:00Z", "2024-01-01T12:00:00Z"), Status: booking.StatusCancelled},
			{Window: window(t, "2024-01-01T10:00:00Z", "2024-01-01T12:00:00Z"), Status: booking.StatusCompleted},
		}
		assert.False(t, booking.HasConflict(requested, existing))
	})

	t.Run("boundary-adjacent active slot does not conflict", func(t *testing.T) {
		existing := []booking.Slot{
			{Window: window(t, "2024-01-01T09:00:00Z", "2024-01-01T11:00:00Z"), Status: booking.StatusActive},
			{Window: window(t, "2024-01-01T13:00:00Z", "2024-01-01T15:00:00Z"), Status: booking.StatusActive},
		}
		assert.False(t, booking.HasConflict(requested, existing))
	})

	t.Run("no existing slots", func(t *testing.T) {
		assert.False(t, booking.HasConflict(requested, nil))
	})
}
