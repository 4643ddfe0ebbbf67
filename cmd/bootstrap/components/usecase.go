package components

import (
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) queries.Paging {
		return queries.NewPaging(cfg.Booking)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewBusinessUseCase,
		commands.NewEmployeeUseCase,
		commands.NewServiceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewBusinessQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewBusinessAuthorizer,
	),
)
