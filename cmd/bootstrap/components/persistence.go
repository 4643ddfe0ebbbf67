package components

import (
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/infra/readstore"
	"marketplace-api/internal/infra/uow"
	"marketplace-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work, so
// only the read stores are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
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
		// Business
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BusinessViewQueries)),
		),
		fx.Annotate(
			readstore.NewBusinessReadStore,
			fx.As(new(queries.BusinessReadStore)),
		),
		// Service
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceViewQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
