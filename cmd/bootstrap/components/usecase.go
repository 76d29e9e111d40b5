package components

import (
	"carhive/internal/domain/booking"
	"carhive/internal/pkg/clock"
	"carhive/internal/pkg/config"
	"carhive/internal/pkg/lock"
	"carhive/internal/usecase"
	"carhive/internal/usecase/commands"
	"carhive/internal/usecase/queries"

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
	lock.NewKeyedMutex,
	func(cfg config.Config) booking.PriceCalculator {
		return booking.NewHourlyPriceCalculator(cfg.Pricing.DriverRatePerHour)
	},
	booking.NewFactory,
	func(cfg config.Config) config.PaymentConfig {
		return cfg.Payment
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewCarUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCarQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
