//go:build unit

package queries_test

import (
	"context"
	"testing"

	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/pkg/errs"
	"bikeshare-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookupStore struct {
	records map[string]booking.LookupRecord
	getErr  error
	putErr  error
	puts    int
}

func newFakeLookupStore() *fakeLookupStore {
	return &fakeLookupStore{records: make(map[string]booking.LookupRecord)}
}

func (f *fakeLookupStore) Get(_ context.Context, reference string) (*booking.LookupRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.records[reference]
	if !ok {
		return nil, infra.WrapRepoErr("no record", nil, infra.KindNotFound)
	}
	return &rec, nil
}

func (f *fakeLookupStore) Put(_ context.Context, rec booking.LookupRecord) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts++
	f.records[rec.Reference] = rec
	return nil
}

type fakeProjectionSource struct {
	records map[string]booking.LookupRecord
}

func (f *fakeProjectionSource) DeriveByReference(_ context.Context, reference string) (*booking.LookupRecord, error) {
	rec, ok := f.records[reference]
	if !ok {
		return nil, infra.WrapRepoErr("no booking", nil, infra.KindNotFound)
	}
	return &rec, nil
}

func sampleRecord(reference string) booking.LookupRecord {
	return booking.LookupRecord{
		Reference:      reference,
		BikeType:       "ebike",
		BikeNumber:     "3d6f8a90-1c2b-4e5f-9a7b-8c9d0e1f2a3b",
		AccessCode:     "AC1B2C3D",
		StartTime:      "2024-06-01T10:00:00Z",
		EndTime:        "2024-06-01T12:00:00Z",
		RentalDuration: "2.00 hours",
		Status:         "active",
	}
}

func TestLookupBooking(t *testing.T) {
	const ref = "BOOK-1A2B3C4D"

	t.Run("projection hit", func(t *testing.T) {
		lookup := newFakeLookupStore()
		lookup.records[ref] = sampleRecord(ref)
		q := queries.NewAssistantQueries(lookup, lookup, &fakeProjectionSource{})

		rec, err := q.LookupBooking(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, "AC1B2C3D", rec.AccessCode)
	})

	t.Run("references match case-insensitively", func(t *testing.T) {
		lookup := newFakeLookupStore()
		lookup.records[ref] = sampleRecord(ref)
		q := queries.NewAssistantQueries(lookup, lookup, &fakeProjectionSource{})

		rec, err := q.LookupBooking(context.Background(), "  book-1a2b3c4d ")
		require.NoError(t, err)
		assert.Equal(t, ref, rec.Reference)
	})

	t.Run("projection miss falls back and repairs", func(t *testing.T) {
		lookup := newFakeLookupStore()
		source := &fakeProjectionSource{records: map[string]booking.LookupRecord{
			ref: sampleRecord(ref),
		}}
		q := queries.NewAssistantQueries(lookup, lookup, source)

		rec, err := q.LookupBooking(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, "AC1B2C3D", rec.AccessCode)
		assert.Equal(t, 1, lookup.puts)

		// Next read hits the repaired projection.
		_, err = q.LookupBooking(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, 1, lookup.puts)
	})

	t.Run("projection read failure still answers from the booking store", func(t *testing.T) {
		lookup := newFakeLookupStore()
		lookup.getErr = errs.New("redis down")
		source := &fakeProjectionSource{records: map[string]booking.LookupRecord{
			ref: sampleRecord(ref),
		}}
		q := queries.NewAssistantQueries(lookup, lookup, source)

		rec, err := q.LookupBooking(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, ref, rec.Reference)
	})

	t.Run("repair failure does not fail the lookup", func(t *testing.T) {
		lookup := newFakeLookupStore()
		lookup.putErr = errs.New("redis down")
		source := &fakeProjectionSource{records: map[string]booking.LookupRecord{
			ref: sampleRecord(ref),
		}}
		q := queries.NewAssistantQueries(lookup, lookup, source)

		_, err := q.LookupBooking(context.Background(), ref)
		assert.NoError(t, err)
	})

	t.Run("unknown reference", func(t *testing.T) {
		q := queries.NewAssistantQueries(newFakeLookupStore(), newFakeLookupStore(), &fakeProjectionSource{})

		_, err := q.LookupBooking(context.Background(), "BOOK-FFFFFFFF")
		assert.ErrorIs(t, err, queries.ErrLookupNotFound)
	})

	t.Run("blank reference", func(t *testing.T) {
		q := queries.NewAssistantQueries(newFakeLookupStore(), newFakeLookupStore(), &fakeProjectionSource{})

		_, err := q.LookupBooking(context.Background(), "   ")
		assert.ErrorIs(t, err, queries.ErrLookupNotFound)
	})
}

func TestAnswer(t *testing.T) {
	q := queries.NewAssistantQueries(newFakeLookupStore(), newFakeLookupStore(), &fakeProjectionSource{})

	tests := []struct {
		name     string
		question string
		contains string
	}{
		{"registration", "How do I register an account?", "multi-factor"},
		{"bike types", "what bikes do you have", "three types"},
		{"pricing", "how much does it cost", "$5/hour"},
		{"booking flow", "help me with a booking", "rental period"},
		{"navigation", "navigation around the site", "Home shows"},
		{"fallback", "what is the weather today", "rephrasing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, q.Answer(tt.question), tt.contains)
		})
	}
}
