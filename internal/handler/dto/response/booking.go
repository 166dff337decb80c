package response

import (
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	TimeSlotID      uuid.UUID `json:"timeSlotId"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Status          string    `json:"status"`
	CalendarEventID *string   `json:"calendarEventId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID(),
		Date:            b.Date().String(),
		TimeSlotID:      b.TimeSlotID(),
		Email:           b.Email(),
		FirstName:       b.FirstName(),
		LastName:        b.LastName(),
		Phone:           b.Phone(),
		Status:          b.Status().String(),
		CalendarEventID: b.CalendarEventID(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}
