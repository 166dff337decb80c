//go:build unit || e2e

package builder

import (
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/slot"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID        uuid.UUID
	Date      string
	Start     string
	End       string
	Available bool
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:        uuid.New(),
		Date:      "2026-06-20",
		Start:     "10:00",
		End:       "14:00",
		Available: true,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SlotBuilder) BuildDomain() (*slot.TimeSlot, error) {
	date, err := slot.NewDate(b.Date)
	if err != nil {
		return nil, err
	}
	start, err := slot.ParseWallTime(b.Start)
	if err != nil {
		return nil, err
	}
	end, err := slot.ParseWallTime(b.End)
	if err != nil {
		return nil, err
	}
	return slot.NewTimeSlot(date, start, end)
}

// BuildReconstructed mirrors a row loaded from the store, with the builder's
// ID and availability preserved.
func (b *SlotBuilder) BuildReconstructed() *slot.TimeSlot {
	date, _ := slot.NewDate(b.Date)
	start, _ := slot.ParseWallTime(b.Start)
	end, _ := slot.ParseWallTime(b.End)
	now := time.Now()
	return slot.ReconstructTimeSlot(b.ID, date, start, end, b.Available, now, now)
}

// Fluent builder methods
func (b *SlotBuilder) WithDate(date string) *SlotBuilder {
	b.Date = date
	return b
}

func (b *SlotBuilder) WithWindow(start, end string) *SlotBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *SlotBuilder) AsReserved() *SlotBuilder {
	b.Available = false
	return b
}
