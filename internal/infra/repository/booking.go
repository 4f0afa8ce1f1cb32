package repository

import (
	"context"
	"time"

	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create is the conditional write guarding the no-double-booking invariant:
// the bookings table carries an exclusion constraint over (bike_id, window)
// for active rows, so a racing insert loses with an exclusion violation and
// surfaces as a conflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (
			id, reference, bike_id, customer_id, customer_email,
			start_time, end_time, duration_hours, total_cost, status,
			bike_type, access_code, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		b.ID().String(),
		b.Reference(),
		b.BikeID().String(),
		b.CustomerID().String(),
		b.CustomerEmail(),
		b.Window().Start(),
		b.Window().End(),
		b.DurationHours().String(),
		b.TotalCost().String(),
		b.Status().String(),
		b.BikeType().String(),
		b.AccessCode(),
		b.CreatedAt(),
	)
	if err != nil {
		return mapPgError("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindSlotsByBike(ctx context.Context, bikeID uuid.UUID) ([]booking.Slot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time, status
		FROM bookings
		WHERE bike_id = $1`,
		bikeID.String(),
	)
	if err != nil {
		return nil, mapPgError("failed to query booking slots", err)
	}
	defer rows.Close()

	var slots []booking.Slot
	for rows.Next() {
		var (
			start, end time.Time
			status     string
		)
		if err := rows.Scan(&start, &end, &status); err != nil {
			return nil, mapPgError("failed to scan booking slot", err)
		}
		window, err := booking.NewTimeWindow(start, end)
		if err != nil {
			// A row that fails window reconstruction cannot conflict with
			// anything; skip it rather than failing the whole scan.
			continue
		}
		slots = append(slots, booking.Slot{Window: window, Status: booking.Status(status)})
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("failed to iterate booking slots", err)
	}
	return slots, nil
}

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingListColumns = `id::text, reference, bike_id::text, bike_type, start_time, end_time, duration_hours::text, total_cost::text, status, created_at`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingListItem, error) {
	return s.findOne(ctx, `SELECT `+bookingListColumns+` FROM bookings WHERE id = $1`, id.String())
}

func (s *BookingReadStore) FindByReference(ctx context.Context, reference string) (*queries.BookingListItem, error) {
	return s.findOne(ctx, `SELECT `+bookingListColumns+` FROM bookings WHERE reference = $1`, reference)
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+bookingListColumns+` FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC`,
		userID.String(),
	)
	if err != nil {
		return nil, mapPgError("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		item, err := scanBookingListItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("failed to iterate bookings", err)
	}
	return items, nil
}

// DeriveByReference rebuilds the lookup projection from the authoritative
// row. Used when the fast path misses and by the reconciliation sweep.
func (s *BookingReadStore) DeriveByReference(ctx context.Context, reference string) (*booking.LookupRecord, error) {
	var (
		rec           booking.LookupRecord
		start, end    time.Time
		durationHours string
	)
	err := s.pool.QueryRow(ctx, `
		SELECT reference, bike_type, bike_id::text, access_code,
		       start_time, end_time, duration_hours::text, status
		FROM bookings WHERE reference = $1`,
		reference,
	).Scan(
		&rec.Reference, &rec.BikeType, &rec.BikeNumber, &rec.AccessCode,
		&start, &end, &durationHours, &rec.Status,
	)
	if err != nil {
		return nil, mapPgError("failed to derive lookup record", err)
	}

	hours, err := decimal.NewFromString(durationHours)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt duration", err)
	}

	rec.StartTime = start.Format(time.RFC3339)
	rec.EndTime = end.Format(time.RFC3339)
	rec.RentalDuration = hours.StringFixed(2) + " hours"
	return &rec, nil
}

// ActiveReferences lists the references of all active bookings, oldest
// first, for the reconciliation sweep.
func (s *BookingReadStore) ActiveReferences(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT reference FROM bookings WHERE status = 'active' ORDER BY created_at`,
	)
	if err != nil {
		return nil, mapPgError("failed to list active references", err)
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, mapPgError("failed to scan reference", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("failed to iterate references", err)
	}
	return refs, nil
}

func (s *BookingReadStore) findOne(ctx context.Context, query string, args ...any) (*queries.BookingListItem, error) {
	row := s.pool.QueryRow(ctx, query, args...)
	return scanBookingListItem(row.Scan)
}

func scanBookingListItem(scan func(dest ...any) error) (*queries.BookingListItem, error) {
	var (
		item                 queries.BookingListItem
		id, bikeID           string
		durationHours, total string
	)
	if err := scan(
		&id, &item.Reference, &bikeID, &item.BikeType,
		&item.StartTime, &item.EndTime, &durationHours, &total,
		&item.Status, &item.CreatedAt,
	); err != nil {
		return nil, mapPgError("failed to scan booking", err)
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking id", err)
	}
	parsedBikeID, err := uuid.Parse(bikeID)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt bike id", err)
	}
	item.ID = parsedID
	item.BikeID = parsedBikeID

	if item.DurationHours, err = decimal.NewFromString(durationHours); err != nil {
		return nil, infra.WrapRepoErr("corrupt duration", err)
	}
	if item.TotalCost, err = decimal.NewFromString(total); err != nil {
		return nil, infra.WrapRepoErr("corrupt total cost", err)
	}
	return &item, nil
}
