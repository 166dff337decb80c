package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/slot"
	"github.com/openairphotobooth/booking-api/internal/pkg/errs"
)

type ContactParams struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Location  string
	// Date and TimeSlot describe the customer's chosen event, when known.
	Date     string
	TimeSlot string
}

type ContactUseCase interface {
	UpsertContact(ctx context.Context, params ContactParams) error
}

type contactUseCaseImpl struct {
	crm      CRM
	location *time.Location
}

func NewContactUseCase(crm CRM, location *time.Location) ContactUseCase {
	return &contactUseCaseImpl{crm: crm, location: location}
}

// UpsertContact pushes the wizard's contact step to the CRM. It is
// fire-and-forget relative to the reservation flow: callers surface failures
// as a non-blocking notice and never roll back a booking over them.
func (c *contactUseCaseImpl) UpsertContact(ctx context.Context, params ContactParams) error {
	if strings.TrimSpace(params.Email) == "" ||
		strings.TrimSpace(params.FirstName) == "" ||
		strings.TrimSpace(params.LastName) == "" ||
		strings.TrimSpace(params.Phone) == "" {
		return errs.Mark(errs.New("missing required contact fields"), ErrValidation)
	}

	contact := Contact{
		Email:         strings.TrimSpace(params.Email),
		FirstName:     strings.TrimSpace(params.FirstName),
		LastName:      strings.TrimSpace(params.LastName),
		Phone:         strings.TrimSpace(params.Phone),
		EventLocation: strings.TrimSpace(params.Location),
	}

	if params.Date != "" && params.TimeSlot != "" {
		if at, err := c.eventTime(params.Date, params.TimeSlot); err == nil {
			contact.EventTime = &at
		}
		// Malformed event hints are dropped rather than failing the upsert;
		// the contact itself is still worth recording.
	}

	if err := c.crm.UpsertContact(ctx, contact); err != nil {
		return errs.Mark(err, ErrUpstreamService)
	}
	return nil
}

func (c *contactUseCaseImpl) eventTime(date, wallTime string) (time.Time, error) {
	d, err := slot.NewDate(date)
	if err != nil {
		return time.Time{}, err
	}
	wt, err := slot.ParseWallTime(wallTime)
	if err != nil {
		return time.Time{}, err
	}
	return wt.At(d, c.location), nil
}
