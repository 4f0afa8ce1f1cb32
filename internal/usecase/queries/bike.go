package queries

import (
	"context"

	"bikeshare-api/internal/domain/bike"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBikeNotFound    = errs.New("bike not found")
	ErrInvalidTypeName = errs.New("invalid bike type filter")
)

type BikeQueries interface {
	GetBike(ctx context.Context, id uuid.UUID) (*BikeView, error)
	// ListBikes returns the fleet, optionally narrowed to one bike type.
	ListBikes(ctx context.Context, typeFilter string) ([]*BikeView, error)
}

type BikeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BikeView, error)
	FindAll(ctx context.Context) ([]*BikeView, error)
	FindByType(ctx context.Context, bikeType string) ([]*BikeView, error)
}

type bikeQueriesImpl struct {
	readStore BikeReadStore
}

func NewBikeQueries(readStore BikeReadStore) BikeQueries {
	return &bikeQueriesImpl{readStore: readStore}
}

func (q *bikeQueriesImpl) GetBike(ctx context.Context, id uuid.UUID) (*BikeView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBikeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bikeQueriesImpl) ListBikes(ctx context.Context, typeFilter string) ([]*BikeView, error) {
	if typeFilter == "" {
		return q.readStore.FindAll(ctx)
	}

	bikeType, err := bike.NewType(typeFilter)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTypeName)
	}
	return q.readStore.FindByType(ctx, bikeType.String())
}
