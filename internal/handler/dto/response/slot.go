package response

import (
	"github.com/openairphotobooth/booking-api/internal/domain/slot"

	"github.com/google/uuid"
)

type TimeSlotResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Available bool      `json:"available"`
}

func FromTimeSlot(s *slot.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:        s.ID(),
		Date:      s.Date().String(),
		StartTime: s.Start().String(),
		EndTime:   s.End().String(),
		Available: s.Available(),
	}
}

func FromTimeSlots(slots []*slot.TimeSlot) []*TimeSlotResponse {
	out := make([]*TimeSlotResponse, len(slots))
	for i, s := range slots {
		out[i] = FromTimeSlot(s)
	}
	return out
}
