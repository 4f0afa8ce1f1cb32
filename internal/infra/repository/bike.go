package repository

import (
	"context"
	"fmt"
	"strings"

	"bikeshare-api/internal/domain/bike"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/usecase/commands"
	"bikeshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type BikeRepository struct {
	pool *pgxpool.Pool
}

func NewBikeRepository(pool *pgxpool.Pool) *BikeRepository {
	return &BikeRepository{pool: pool}
}

const bikeColumns = `id::text, type, hourly_rate::text, access_code, available, location, features, franchise_id::text`

type bikeRow struct {
	id          string
	bikeType    string
	hourlyRate  string
	accessCode  string
	available   bool
	location    string
	features    []string
	franchiseID string
}

func (r *BikeRepository) Create(ctx context.Context, b *bike.Bike) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bikes (id, type, hourly_rate, access_code, available, location, features, franchise_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID().String(),
		b.Type().String(),
		b.HourlyRate().String(),
		b.AccessCode(),
		b.Available(),
		b.Location(),
		b.Features(),
		b.FranchiseID().String(),
	)
	if err != nil {
		return mapPgError("failed to insert bike", err)
	}
	return nil
}

func (r *BikeRepository) Update(ctx context.Context, id uuid.UUID, patch commands.BikePatch) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.HourlyRate != nil {
		args = append(args, patch.HourlyRate.String())
		sets = append(sets, fmt.Sprintf("hourly_rate = $%d", len(args)))
	}
	if patch.Available != nil {
		args = append(args, *patch.Available)
		sets = append(sets, fmt.Sprintf("available = $%d", len(args)))
	}
	if patch.Location != nil {
		args = append(args, *patch.Location)
		sets = append(sets, fmt.Sprintf("location = $%d", len(args)))
	}
	if patch.Features != nil {
		args = append(args, *patch.Features)
		sets = append(sets, fmt.Sprintf("features = $%d", len(args)))
	}

	args = append(args, id.String())
	query := fmt.Sprintf(
		"UPDATE bikes SET %s, updated_at = now() WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return mapPgError("failed to update bike", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bike not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindByID serves the write side, which needs the access code and rate.
func (r *BikeRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BikeSnapshot, error) {
	row, err := scanBikeRow(ctx, r.pool, `SELECT `+bikeColumns+` FROM bikes WHERE id = $1`, id.String())
	if err != nil {
		return nil, err
	}
	return toBikeSnapshot(row)
}

type BikeReadStore struct {
	pool *pgxpool.Pool
}

func NewBikeReadStore(pool *pgxpool.Pool) *BikeReadStore {
	return &BikeReadStore{pool: pool}
}

func (s *BikeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BikeView, error) {
	row, err := scanBikeRow(ctx, s.pool, `SELECT `+bikeColumns+` FROM bikes WHERE id = $1`, id.String())
	if err != nil {
		return nil, err
	}
	return toBikeView(row)
}

func (s *BikeReadStore) FindAll(ctx context.Context) ([]*queries.BikeView, error) {
	return s.findMany(ctx, `SELECT `+bikeColumns+` FROM bikes ORDER BY created_at`)
}

func (s *BikeReadStore) FindByType(ctx context.Context, bikeType string) ([]*queries.BikeView, error) {
	return s.findMany(ctx, `SELECT `+bikeColumns+` FROM bikes WHERE type = $1 ORDER BY created_at`, bikeType)
}

func (s *BikeReadStore) findMany(ctx context.Context, query string, args ...any) ([]*queries.BikeView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError("failed to list bikes", err)
	}
	defer rows.Close()

	var views []*queries.BikeView
	for rows.Next() {
		var row bikeRow
		if err := rows.Scan(
			&row.id, &row.bikeType, &row.hourlyRate, &row.accessCode,
			&row.available, &row.location, &row.features, &row.franchiseID,
		); err != nil {
			return nil, mapPgError("failed to scan bike row", err)
		}
		view, err := toBikeView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("failed to iterate bike rows", err)
	}
	return views, nil
}

func scanBikeRow(ctx context.Context, pool *pgxpool.Pool, query string, args ...any) (bikeRow, error) {
	var row bikeRow
	err := pool.QueryRow(ctx, query, args...).Scan(
		&row.id, &row.bikeType, &row.hourlyRate, &row.accessCode,
		&row.available, &row.location, &row.features, &row.franchiseID,
	)
	if err != nil {
		return bikeRow{}, mapPgError("failed to find bike", err)
	}
	return row, nil
}

func toBikeSnapshot(row bikeRow) (*commands.BikeSnapshot, error) {
	id, rate, franchiseID, err := parseBikeRow(row)
	if err != nil {
		return nil, err
	}
	return &commands.BikeSnapshot{
		ID:          id,
		Type:        row.bikeType,
		HourlyRate:  rate,
		AccessCode:  row.accessCode,
		Available:   row.available,
		Location:    row.location,
		Features:    row.features,
		FranchiseID: franchiseID,
	}, nil
}

func toBikeView(row bikeRow) (*queries.BikeView, error) {
	id, rate, franchiseID, err := parseBikeRow(row)
	if err != nil {
		return nil, err
	}
	return &queries.BikeView{
		ID:          id,
		Type:        row.bikeType,
		HourlyRate:  rate,
		Available:   row.available,
		Location:    row.location,
		Features:    row.features,
		FranchiseID: franchiseID,
	}, nil
}

func parseBikeRow(row bikeRow) (uuid.UUID, decimal.Decimal, uuid.UUID, error) {
	id, err := uuid.Parse(row.id)
	if err != nil {
		return uuid.Nil, decimal.Zero, uuid.Nil, infra.WrapRepoErr("corrupt bike id", err)
	}
	rate, err := decimal.NewFromString(row.hourlyRate)
	if err != nil {
		return uuid.Nil, decimal.Zero, uuid.Nil, infra.WrapRepoErr("corrupt hourly rate", err)
	}
	franchiseID, err := uuid.Parse(row.franchiseID)
	if err != nil {
		return uuid.Nil, decimal.Zero, uuid.Nil, infra.WrapRepoErr("corrupt franchise id", err)
	}
	return id, rate, franchiseID, nil
}
