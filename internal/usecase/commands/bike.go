package commands

import (
	"context"

	"bikeshare-api/internal/domain/bike"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBikeType = errs.New("invalid bike type")
	ErrInvalidRate     = errs.New("invalid hourly rate")
	ErrEmptyPatch      = errs.New("no updatable fields supplied")
)

type AddBikeInput struct {
	Type        string
	HourlyRate  decimal.Decimal
	Available   bool
	Location    string
	Features    []string
	FranchiseID uuid.UUID
}

type AddBikeResult struct {
	BikeID     uuid.UUID
	AccessCode string
}

type BikeCommands interface {
	AddBike(ctx context.Context, in AddBikeInput) (*AddBikeResult, error)
	UpdateBike(ctx context.Context, id uuid.UUID, patch BikePatch) error
}

type bikeCommandsImpl struct {
	repo BikeRepository
}

func NewBikeCommands(repo BikeRepository) BikeCommands {
	return &bikeCommandsImpl{repo: repo}
}

func (c *bikeCommandsImpl) AddBike(ctx context.Context, in AddBikeInput) (*AddBikeResult, error) {
	bikeType, err := bike.NewType(in.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBikeType)
	}

	entity, err := bike.NewBike(bikeType, in.HourlyRate, in.Available, in.Location, in.Features, in.FranchiseID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRate)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	return &AddBikeResult{
		BikeID:     entity.ID(),
		AccessCode: entity.AccessCode(),
	}, nil
}

func (c *bikeCommandsImpl) UpdateBike(ctx context.Context, id uuid.UUID, patch BikePatch) error {
	if patch.HourlyRate == nil && patch.Available == nil && patch.Location == nil && patch.Features == nil {
		return ErrEmptyPatch
	}
	if patch.HourlyRate != nil && patch.HourlyRate.IsNegative() {
		return ErrInvalidRate
	}

	if err := c.repo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBikeNotFound
		}
		return errs.Mark(err, ErrStorageFailure)
	}

	return nil
}
