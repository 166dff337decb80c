package bootstrap

import (
	"fmt"
	"time"

	"github.com/openairphotobooth/booking-api/internal/infra/gcal"
	"github.com/openairphotobooth/booking-api/internal/pkg/config"
	"github.com/openairphotobooth/booking-api/internal/usecase"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewBusinessLocation,
		NewCalendar,
	),
)

// NewBusinessLocation resolves the timezone all wall-clock slot times are
// anchored in.
func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Calendar.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_TIMEZONE %q: %w", cfg.Calendar.TimeZone, err)
	}
	return loc, nil
}

// NewCalendar selects the calendar strategy from CALENDAR_PROVIDER.
func NewCalendar(cfg config.Config, location *time.Location) (usecase.Calendar, error) {
	switch cfg.Calendar.Provider {
	case "google":
		return gcal.NewClient(cfg.Calendar, location)
	case "synthetic":
		return gcal.NewSynthetic(location), nil
	default:
		return nil, fmt.Errorf("unknown CALENDAR_PROVIDER %q", cfg.Calendar.Provider)
	}
}
