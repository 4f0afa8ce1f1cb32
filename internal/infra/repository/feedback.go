package repository

import (
	"context"

	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/usecase/commands"
	"bikeshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

func (r *FeedbackRepository) Create(ctx context.Context, rec commands.FeedbackRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO feedback (id, bike_id, user_type, text, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID.String(),
		rec.BikeID.String(),
		rec.UserType,
		rec.Text,
		rec.Sentiment,
		rec.CreatedAt,
	)
	if err != nil {
		return mapPgError("failed to insert feedback", err)
	}
	return nil
}

type FeedbackReadStore struct {
	pool *pgxpool.Pool
}

func NewFeedbackReadStore(pool *pgxpool.Pool) *FeedbackReadStore {
	return &FeedbackReadStore{pool: pool}
}

func (s *FeedbackReadStore) FindAll(ctx context.Context) ([]*queries.FeedbackView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id::text, bike_id::text, user_type, text, sentiment, created_at
		FROM feedback ORDER BY created_at DESC`)
	if err != nil {
		return nil, mapPgError("failed to list feedback", err)
	}
	defer rows.Close()

	var views []*queries.FeedbackView
	for rows.Next() {
		var (
			view           queries.FeedbackView
			rawID, rawBike string
		)
		if err := rows.Scan(
			&rawID, &rawBike, &view.UserType, &view.Text, &view.Sentiment, &view.CreatedAt,
		); err != nil {
			return nil, mapPgError("failed to scan feedback row", err)
		}
		if view.ID, err = uuid.Parse(rawID); err != nil {
			return nil, infra.WrapRepoErr("corrupt feedback id", err)
		}
		if view.BikeID, err = uuid.Parse(rawBike); err != nil {
			return nil, infra.WrapRepoErr("corrupt feedback bike id", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("failed to iterate feedback rows", err)
	}
	return views, nil
}

type ConcernRepository struct {
	pool *pgxpool.Pool
}

func NewConcernRepository(pool *pgxpool.Pool) *ConcernRepository {
	return &ConcernRepository{pool: pool}
}

func (r *ConcernRepository) Create(ctx context.Context, ticket commands.ConcernTicket) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO concerns (id, booking_reference, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		ticket.ID.String(),
		ticket.Reference,
		ticket.Description,
		ticket.Status,
		ticket.CreatedAt,
	)
	if err != nil {
		return mapPgError("failed to insert concern", err)
	}
	return nil
}
