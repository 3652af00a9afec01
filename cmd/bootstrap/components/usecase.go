package components

import (
	"go.uber.org/fx"

	"pourup/internal/domain/booking"
	"pourup/internal/pkg/clock"
	"pourup/internal/usecase"
	"pourup/internal/usecase/commands"
	"pourup/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewAvailabilityEvaluator,
	booking.NewCodeGenerator,
	fx.Annotate(
		booking.NewRolePolicy,
		fx.As(new(booking.TransitionPolicy)),
	),
	booking.NewStateMachine,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
