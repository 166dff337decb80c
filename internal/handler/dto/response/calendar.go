package response

import (
	"time"

	"github.com/openairphotobooth/booking-api/internal/usecase"
)

type BlockedWindowResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type CalendarCheckResponse struct {
	BlockedTimes []BlockedWindowResponse `json:"blockedTimes"`
}

func FromBlockedWindows(windows []usecase.BlockedWindow) *CalendarCheckResponse {
	out := make([]BlockedWindowResponse, len(windows))
	for i, w := range windows {
		out[i] = BlockedWindowResponse{Start: w.Start, End: w.End}
	}
	return &CalendarCheckResponse{BlockedTimes: out}
}

type PublishEventResponse struct {
	EventID  string `json:"eventId"`
	Replayed bool   `json:"replayed"`
}

type SeedTimeSlotsResponse struct {
	Inserted int64 `json:"inserted"`
}
