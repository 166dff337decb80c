package gcal

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/slot"
	"github.com/openairphotobooth/booking-api/internal/usecase"

	"github.com/google/uuid"
)

// rentalWindows are the standard 4-hour blocks the booth is offered in.
var rentalWindows = []struct {
	startHour int
	endHour   int
}{
	{10, 14},
	{12, 16},
	{14, 18},
	{16, 20},
	{18, 22},
}

// Synthetic is the development/demo calendar strategy: it derives blocked
// windows deterministically from the date so the same date always shows the
// same availability, and "creates" events without any upstream call.
type Synthetic struct {
	location *time.Location
}

var _ usecase.Calendar = (*Synthetic)(nil)

func NewSynthetic(location *time.Location) *Synthetic {
	return &Synthetic{location: location}
}

func (s *Synthetic) ListBlockedWindows(_ context.Context, date slot.Date) ([]usecase.BlockedWindow, error) {
	seed := dateSeed(date)

	var windows []usecase.BlockedWindow
	for i, w := range rentalWindows {
		// Roughly a third of the windows read as busy.
		if (seed>>uint(i))%3 != 0 {
			continue
		}
		day := date.Time()
		start := time.Date(day.Year(), day.Month(), day.Day(), w.startHour, 0, 0, 0, s.location)
		end := time.Date(day.Year(), day.Month(), day.Day(), w.endHour, 0, 0, 0, s.location)
		windows = append(windows, usecase.BlockedWindow{Start: start, End: end})
	}
	return windows, nil
}

func (s *Synthetic) CreateEvent(_ context.Context, _ usecase.CalendarEvent) (string, error) {
	return fmt.Sprintf("synthetic-%s", uuid.NewString()), nil
}

func dateSeed(date slot.Date) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(date.String()))
	return h.Sum64()
}
