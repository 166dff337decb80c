package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDate           = errors.New("slot date cannot be empty")
	ErrStartNotBeforeEnd   = errors.New("slot start time must be before end time")
	ErrSlotAlreadyReserved = errors.New("slot is already reserved")
)

// TimeSlot is a bookable interval on a single calendar date. Availability is
// the single source of truth for whether the slot can still be reserved; the
// external calendar is advisory only.
type TimeSlot struct {
	id        uuid.UUID
	date      Date
	start     WallTime
	end       WallTime
	available bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTimeSlot(date Date, start, end WallTime) (*TimeSlot, error) {
	if date.IsZero() {
		return nil, ErrEmptyDate
	}
	if !start.Before(end) {
		return nil, ErrStartNotBeforeEnd
	}

	return &TimeSlot{
		id:        uuid.New(),
		date:      date,
		start:     start,
		end:       end,
		available: true,
	}, nil
}

func ReconstructTimeSlot(
	id uuid.UUID,
	date Date,
	start, end WallTime,
	available bool,
	createdAt, updatedAt time.Time,
) *TimeSlot {
	return &TimeSlot{
		id:        id,
		date:      date,
		start:     start,
		end:       end,
		available: available,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reserve flips the slot to unavailable. The persistent compare-and-swap in
// the store is what actually settles races; this guards in-memory misuse.
func (s *TimeSlot) Reserve() error {
	if !s.available {
		return ErrSlotAlreadyReserved
	}
	s.available = false
	return nil
}

func (s *TimeSlot) ID() uuid.UUID        { return s.id }
func (s *TimeSlot) Date() Date           { return s.date }
func (s *TimeSlot) Start() WallTime      { return s.start }
func (s *TimeSlot) End() WallTime        { return s.end }
func (s *TimeSlot) Available() bool      { return s.available }
func (s *TimeSlot) CreatedAt() time.Time { return s.createdAt }
func (s *TimeSlot) UpdatedAt() time.Time { return s.updatedAt }
