package usecase

import (
	"context"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/booking"
	"github.com/openairphotobooth/booking-api/internal/domain/slot"
	"github.com/openairphotobooth/booking-api/internal/infra/db"

	"github.com/google/uuid"
)

// SlotRepository and BookingRepository are the only writers of the slot and
// booking tables; every mutation flows through the reservation usecase.
type SlotRepository interface {
	ListByDate(ctx context.Context, date slot.Date) ([]*slot.TimeSlot, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*slot.TimeSlot, error)
	ReserveIfAvailable(ctx context.Context, tx db.DBTX, id uuid.UUID, date slot.Date) error
	BulkCreate(ctx context.Context, tx db.DBTX, slots []*slot.TimeSlot) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindByIDWithSlot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, *slot.TimeSlot, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) error
	StampCalendarEvent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, eventID string) error
}

// BlockedWindow is a busy interval reported by the external calendar. It is an
// advisory signal only; the slot store stays the source of truth.
type BlockedWindow struct {
	Start time.Time
	End   time.Time
}

type CalendarEvent struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
}

// Calendar is the mirror strategy. Implementations: the live Google Calendar
// client and a deterministic synthetic generator for development.
type Calendar interface {
	ListBlockedWindows(ctx context.Context, date slot.Date) ([]BlockedWindow, error)
	CreateEvent(ctx context.Context, ev CalendarEvent) (string, error)
}

type Contact struct {
	Email         string
	FirstName     string
	LastName      string
	Phone         string
	EventLocation string
	EventTime     *time.Time
}

// CRM receives contact records. Calls are fire-and-forget relative to the
// reservation flow; a CRM failure never unwinds a booking.
type CRM interface {
	UpsertContact(ctx context.Context, c Contact) error
}
