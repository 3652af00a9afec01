package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"pourup/internal/infra/readstore"
	"pourup/internal/infra/repository"
	"pourup/internal/usecase/commands"
	"pourup/internal/usecase/queries"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewRepositoryDB,
		NewReadStoreDB,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewExperienceRepository,
			fx.As(new(commands.ExperienceRepository)),
		),
		fx.Annotate(
			repository.NewOutletRepository,
			fx.As(new(commands.OutletRepository)),
		),
		fx.Annotate(
			repository.NewOutletAssignmentRepository,
			fx.As(new(commands.OutletAssignmentRepository)),
			fx.As(new(queries.OutletAssignmentReads)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewRepositoryDB(pool *pgxpool.Pool) repository.DB {
	return pool
}

func NewReadStoreDB(pool *pgxpool.Pool) readstore.DB {
	return pool
}
