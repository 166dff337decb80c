package bootstrap

import (
	"github.com/openairphotobooth/booking-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	CalendarModule,
	CRMModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
