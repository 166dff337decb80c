package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/slot"
	"github.com/openairphotobooth/booking-api/internal/infra"
	"github.com/openairphotobooth/booking-api/internal/infra/db"
	"github.com/openairphotobooth/booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type PublishResult struct {
	EventID string
	// Replayed is true when the booking already carried an event stamp and no
	// new upstream event was created.
	Replayed bool
}

type CalendarUseCase interface {
	CheckBlockedWindows(ctx context.Context, date string) ([]BlockedWindow, error)
	Publish(ctx context.Context, bookingID uuid.UUID) (*PublishResult, error)
}

type calendarUseCaseImpl struct {
	calendar    Calendar
	bookingRepo BookingRepository
	pool        db.DBTX
	location    *time.Location
}

func NewCalendarUseCase(
	calendar Calendar,
	bookingRepo BookingRepository,
	pool db.DBTX,
	location *time.Location,
) CalendarUseCase {
	return &calendarUseCaseImpl{
		calendar:    calendar,
		bookingRepo: bookingRepo,
		pool:        pool,
		location:    location,
	}
}

func (c *calendarUseCaseImpl) CheckBlockedWindows(ctx context.Context, date string) ([]BlockedWindow, error) {
	d, err := slot.NewDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	windows, err := c.calendar.ListBlockedWindows(ctx, d)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamService)
	}
	return windows, nil
}

// Publish mirrors a committed booking to the external calendar and stamps the
// event identifier on the booking. The upstream has no idempotency key, so the
// stamp is the duplicate guard: a booking that already carries one is returned
// as-is without another upstream call. An upstream failure leaves the booking
// untouched: the reservation stays valid and the missing event is an accepted
// eventual-consistency gap.
func (c *calendarUseCaseImpl) Publish(ctx context.Context, bookingID uuid.UUID) (*PublishResult, error) {
	b, s, err := c.bookingRepo.FindByIDWithSlot(ctx, c.pool, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if b.IsPublished() {
		return &PublishResult{EventID: *b.CalendarEventID(), Replayed: true}, nil
	}

	ev := CalendarEvent{
		Summary: fmt.Sprintf("Photo Booth Booking - %s", b.CustomerName()),
		Description: fmt.Sprintf(
			"Photo booth rental booking\nEmail: %s\nPhone: %s",
			b.Email(), b.Phone(),
		),
		Start:         s.Start().At(s.Date(), c.location),
		End:           s.End().At(s.Date(), c.location),
		AttendeeEmail: b.Email(),
	}

	eventID, err := c.calendar.CreateEvent(ctx, ev)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamService)
	}

	if err := c.bookingRepo.StampCalendarEvent(ctx, c.pool, bookingID, eventID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// A concurrent publisher stamped first; surface its event and
			// accept that this call created an orphan upstream.
			slog.Warn("calendar event stamped concurrently, duplicate upstream event likely",
				"booking_id", bookingID, "event_id", eventID)
			stamped, findErr := c.bookingRepo.FindByID(ctx, c.pool, bookingID)
			if findErr == nil && stamped.CalendarEventID() != nil {
				return &PublishResult{EventID: *stamped.CalendarEventID(), Replayed: true}, nil
			}
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &PublishResult{EventID: eventID}, nil
}
