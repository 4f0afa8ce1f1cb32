//go:build unit

package commands_test

import (
	"context"
	"testing"

	"bikeshare-api/internal/domain/bike"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/pkg/errs"
	"bikeshare-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBikeRepo struct {
	created   []*bike.Bike
	patches   map[uuid.UUID]commands.BikePatch
	createErr error
	updateErr error
}

func newFakeBikeRepo() *fakeBikeRepo {
	return &fakeBikeRepo{patches: make(map[uuid.UUID]commands.BikePatch)}
}

func (f *fakeBikeRepo) Create(_ context.Context, b *bike.Bike) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBikeRepo) Update(_ context.Context, id uuid.UUID, patch commands.BikePatch) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.patches[id] = patch
	return nil
}

func TestAddBike(t *testing.T) {
	validInput := commands.AddBikeInput{
		Type:        "scooter",
		HourlyRate:  decimal.RequireFromString("7.50"),
		Available:   true,
		Location:    "Harbor Gate",
		Features:    []string{"basket"},
		FranchiseID: uuid.New(),
	}

	t.Run("success mints an access code", func(t *testing.T) {
		repo := newFakeBikeRepo()
		cmds := commands.NewBikeCommands(repo)

		result, err := cmds.AddBike(context.Background(), validInput)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, result.BikeID)
		assert.Regexp(t, `^AC[0-9A-F]{6}$`, result.AccessCode)
		require.Len(t, repo.created, 1)
		assert.Equal(t, result.BikeID, repo.created[0].ID())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		repo := newFakeBikeRepo()
		cmds := commands.NewBikeCommands(repo)

		in := validInput
		in.Type = "hoverboard"
		_, err := cmds.AddBike(context.Background(), in)
		assert.ErrorIs(t, err, commands.ErrInvalidBikeType)
		assert.Empty(t, repo.created)
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		repo := newFakeBikeRepo()
		cmds := commands.NewBikeCommands(repo)

		in := validInput
		in.HourlyRate = decimal.RequireFromString("-1.00")
		_, err := cmds.AddBike(context.Background(), in)
		assert.ErrorIs(t, err, commands.ErrInvalidRate)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		repo := newFakeBikeRepo()
		repo.createErr = infra.WrapRepoErr("insert failed", errs.New("boom"))
		cmds := commands.NewBikeCommands(repo)

		_, err := cmds.AddBike(context.Background(), validInput)
		assert.ErrorIs(t, err, commands.ErrStorageFailure)
	})
}

func TestUpdateBike(t *testing.T) {
	rate := decimal.RequireFromString("9.00")
	available := false

	t.Run("applies a partial patch", func(t *testing.T) {
		repo := newFakeBikeRepo()
		cmds := commands.NewBikeCommands(repo)
		id := uuid.New()

		err := cmds.UpdateBike(context.Background(), id, commands.BikePatch{
			HourlyRate: &rate,
			Available:  &available,
		})
		require.NoError(t, err)

		patch, ok := repo.patches[id]
		require.True(t, ok)
		assert.True(t, patch.HourlyRate.Equal(rate))
		assert.False(t, *patch.Available)
		assert.Nil(t, patch.Location)
	})

	t.Run("rejects an empty patch", func(t *testing.T) {
		repo := newFakeBikeRepo()
		cmds := commands.NewBikeCommands(repo)

		err := cmds.UpdateBike(context.Background(), uuid.New(), commands.BikePatch{})
		assert.ErrorIs(t, err, commands.ErrEmptyPatch)
	})

	t.Run("rejects a negative rate", func(t *testing.T) {
		repo := newFakeBikeRepo()
		cmds := commands.NewBikeCommands(repo)

		negative := decimal.RequireFromString("-0.01")
		err := cmds.UpdateBike(context.Background(), uuid.New(), commands.BikePatch{HourlyRate: &negative})
		assert.ErrorIs(t, err, commands.ErrInvalidRate)
	})

	t.Run("unknown bike maps to not found", func(t *testing.T) {
		repo := newFakeBikeRepo()
		repo.updateErr = infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
		cmds := commands.NewBikeCommands(repo)

		err := cmds.UpdateBike(context.Background(), uuid.New(), commands.BikePatch{Available: &available})
		assert.ErrorIs(t, err, commands.ErrBikeNotFound)
	})
}
