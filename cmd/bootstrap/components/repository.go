package components

import (
	"carhive/internal/infra/db"
	"carhive/internal/infra/readstore"
	"carhive/internal/infra/writerepo"
	"carhive/internal/usecase/commands"
	"carhive/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewReadDBTX,
		NewBeginner,
		// Write side
		fx.Annotate(
			writerepo.NewCarRepository,
			fx.As(new(commands.CarRepository)),
		),
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(queries.CarViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
			fx.As(new(commands.UserReadStore)),
		),
	),
)

func NewReadDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewBeginner(pool *pgxpool.Pool) db.Beginner {
	return pool
}
