package components

import (
	"bikeshare-api/internal/pkg/clock"
	"bikeshare-api/internal/usecase"
	"bikeshare-api/internal/usecase/commands"
	"bikeshare-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBikeCommands,
		commands.NewBookingCommands,
		commands.NewFeedbackCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBikeQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewAssistantQueries,
		queries.NewFeedbackQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
