package components

import (
	"github.com/openairphotobooth/booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewReservationUseCase,
		usecase.NewCalendarUseCase,
		usecase.NewContactUseCase,
	),
)
