package bootstrap

import (
	"github.com/openairphotobooth/booking-api/internal/infra/hubspot"
	"github.com/openairphotobooth/booking-api/internal/pkg/config"
	"github.com/openairphotobooth/booking-api/internal/usecase"

	"go.uber.org/fx"
)

var CRMModule = fx.Module("crm",
	fx.Provide(
		NewCRM,
	),
)

func NewCRM(cfg config.Config) (usecase.CRM, error) {
	return hubspot.NewClient(cfg.CRM)
}
