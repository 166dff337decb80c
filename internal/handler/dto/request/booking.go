package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Date       string    `json:"date" binding:"required"`
	TimeSlotID uuid.UUID `json:"timeSlotId" binding:"required"`
	Email      string    `json:"email" binding:"required,email"`
	FirstName  string    `json:"firstName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	Phone      string    `json:"phone,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
