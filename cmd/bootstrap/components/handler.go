package components

import (
	"github.com/openairphotobooth/booking-api/internal/handler"
	"github.com/openairphotobooth/booking-api/internal/handler/api"
	"github.com/openairphotobooth/booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCalendarHandler,
		api.NewContactHandler,
		api.NewAdminHandler,
		middleware.NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
