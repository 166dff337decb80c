//go:build unit || e2e

package builder

import (
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/booking"
	"github.com/openairphotobooth/booking-api/internal/domain/slot"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	Date            string
	TimeSlotID      uuid.UUID
	Email           string
	FirstName       string
	LastName        string
	Phone           string
	Status          string
	CalendarEventID *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		Date:       "2026-06-20",
		TimeSlotID: uuid.New(),
		Email:      "customer@example.com",
		FirstName:  "Jamie",
		LastName:   "Rivera",
		Phone:      "5551234567",
		Status:     "pending",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := slot.NewDate(b.Date)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(date, b.TimeSlotID, b.Email, b.FirstName, b.LastName, b.Phone)
}

// BuildReconstructed mirrors a row loaded from the store, with the builder's
// ID, status and calendar stamp preserved.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	date, _ := slot.NewDate(b.Date)
	now := time.Now()
	return booking.ReconstructBooking(
		b.ID, date, b.TimeSlotID,
		b.Email, b.FirstName, b.LastName, b.Phone,
		booking.Status(b.Status), b.CalendarEventID,
		now, now,
	)
}

// Fluent builder methods
func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimeSlotID(id uuid.UUID) *BookingBuilder {
	b.TimeSlotID = id
	return b
}

func (b *BookingBuilder) WithoutTimeSlot() *BookingBuilder {
	b.TimeSlotID = uuid.Nil
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.Status = "completed"
	return b
}

func (b *BookingBuilder) WithCalendarEvent(eventID string) *BookingBuilder {
	b.CalendarEventID = &eventID
	return b
}
