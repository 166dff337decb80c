package usecase

import "github.com/openairphotobooth/booking-api/internal/pkg/errs"

var (
	ErrValidation              = errs.New("validation error")
	ErrSlotUnavailable         = errs.New("time slot unavailable")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidStateTransition  = errs.New("invalid booking state transition")
	ErrUpstreamService         = errs.New("upstream service error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
