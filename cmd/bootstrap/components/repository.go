package components

import (
	"bikeshare-api/internal/infra/lookupstore"
	repo_impl "bikeshare-api/internal/infra/repository"
	"bikeshare-api/internal/usecase/commands"
	"bikeshare-api/internal/usecase/queries"
	"bikeshare-api/internal/worker"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Bike
		fx.Annotate(
			repo_impl.NewBikeRepository,
			fx.As(new(commands.BikeRepository)),
			fx.As(new(commands.BikeReader)),
		),
		fx.Annotate(
			repo_impl.NewBikeReadStore,
			fx.As(new(queries.BikeReadStore)),
		),
		// Booking
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingSlotReader)),
		),
		fx.Annotate(
			repo_impl.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookingProjectionSource)),
			fx.As(new(worker.ActiveReferenceSource)),
		),
		// User
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Feedback
		fx.Annotate(
			repo_impl.NewFeedbackRepository,
			fx.As(new(commands.FeedbackRepository)),
		),
		fx.Annotate(
			repo_impl.NewFeedbackReadStore,
			fx.As(new(queries.FeedbackReadStore)),
		),
		fx.Annotate(
			repo_impl.NewConcernRepository,
			fx.As(new(commands.ConcernRepository)),
		),
	),
)

// LookupModule binds the Redis-backed projection store to every port that
// reads or repairs it.
var LookupModule = fx.Module("lookup",
	fx.Provide(
		fx.Annotate(
			lookupstore.NewStore,
			fx.As(new(commands.LookupWriter)),
			fx.As(new(queries.LookupReader)),
			fx.As(new(queries.LookupRepairer)),
			fx.As(new(worker.ProjectionStore)),
		),
	),
)
