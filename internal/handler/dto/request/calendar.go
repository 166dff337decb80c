package request

import (
	"github.com/google/uuid"
)

type PublishEventRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
}
