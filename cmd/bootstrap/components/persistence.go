package components

import (
	"restaurant-booking/internal/infra/readstore"
	sqlc "restaurant-booking/internal/infra/sqlc/generated"
	"restaurant-booking/internal/infra/uow"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Table
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TableViewQueries)),
		),
		fx.Annotate(
			readstore.NewTableReadStore,
			fx.As(new(queries.TableReadStore)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsViewQueries)),
		),
		fx.Annotate(
			NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

// Repositories are bound per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork), new(shared.OutboxUnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewStatsReadStore(q readstore.StatsViewQueries, db sqlc.DBTX, cfg config.Config) *readstore.StatsReadStore {
	return readstore.NewStatsReadStore(q, db, cfg.Booking.TimeZone)
}
