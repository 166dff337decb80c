package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrEmptyTimeSlot        = errors.New("booking must reference a time slot")
	ErrEmptyDate            = errors.New("booking date cannot be empty")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrCalendarEventStamped = errors.New("calendar event already stamped")
	ErrEmptyCalendarEventID = errors.New("calendar event ID cannot be empty")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Booking is one customer's claim on a time slot. Its date must match the
// referenced slot's date; the store enforces that at reservation time.
type Booking struct {
	id              uuid.UUID
	date            slot.Date
	timeSlotID      uuid.UUID
	email           string
	firstName       string
	lastName        string
	phone           string
	status          Status
	calendarEventID *string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(date slot.Date, timeSlotID uuid.UUID, email, firstName, lastName, phone string) (*Booking, error) {
	if date.IsZero() {
		return nil, ErrEmptyDate
	}
	if timeSlotID == uuid.Nil {
		return nil, ErrEmptyTimeSlot
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return &Booking{
		id:         uuid.New(),
		date:       date,
		timeSlotID: timeSlotID,
		email:      email,
		firstName:  strings.TrimSpace(firstName),
		lastName:   strings.TrimSpace(lastName),
		phone:      strings.TrimSpace(phone),
		status:     StatusPending,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	date slot.Date,
	timeSlotID uuid.UUID,
	email, firstName, lastName, phone string,
	status Status,
	calendarEventID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		date:            date,
		timeSlotID:      timeSlotID,
		email:           email,
		firstName:       firstName,
		lastName:        lastName,
		phone:           phone,
		status:          status,
		calendarEventID: calendarEventID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionTo validates the status machine: pending→completed only.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// StampCalendarEvent records the mirror event identifier. It may be set once;
// callers use the stamp to skip re-publishing.
func (b *Booking) StampCalendarEvent(eventID string) error {
	if b.calendarEventID != nil {
		return ErrCalendarEventStamped
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return ErrEmptyCalendarEventID
	}
	b.calendarEventID = &eventID
	return nil
}

func (b *Booking) IsPublished() bool {
	return b.calendarEventID != nil
}

func (b *Booking) CustomerName() string {
	return strings.TrimSpace(b.firstName + " " + b.lastName)
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Date() slot.Date          { return b.date }
func (b *Booking) TimeSlotID() uuid.UUID    { return b.timeSlotID }
func (b *Booking) Email() string            { return b.email }
func (b *Booking) FirstName() string        { return b.firstName }
func (b *Booking) LastName() string         { return b.lastName }
func (b *Booking) Phone() string            { return b.phone }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CalendarEventID() *string { return b.calendarEventID }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
