package components

import (
	"github.com/openairphotobooth/booking-api/internal/infra/db"
	repo_impl "github.com/openairphotobooth/booking-api/internal/infra/repository"
	"github.com/openairphotobooth/booking-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewTxBeginner,
		fx.Annotate(
			repo_impl.NewSlotRepository,
			fx.As(new(usecase.SlotRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) db.TxBeginner {
	return pool
}
