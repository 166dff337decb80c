package usecase

import (
	"context"

	"github.com/openairphotobooth/booking-api/internal/domain/booking"
	"github.com/openairphotobooth/booking-api/internal/domain/slot"
	"github.com/openairphotobooth/booking-api/internal/infra"
	"github.com/openairphotobooth/booking-api/internal/infra/db"
	"github.com/openairphotobooth/booking-api/internal/pkg/errs"
	"github.com/openairphotobooth/booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const reserveMaxRetries = 3

type ReserveParams struct {
	Date       string
	TimeSlotID uuid.UUID
	Email      string
	FirstName  string
	LastName   string
	Phone      string
}

type SeedWindow struct {
	Start string
	End   string
}

type ReservationUseCase interface {
	ListSlots(ctx context.Context, date string) ([]*slot.TimeSlot, error)
	Reserve(ctx context.Context, params ReserveParams) (*booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
	SeedSlots(ctx context.Context, date string, windows []SeedWindow) (int64, error)
}

type reservationUseCaseImpl struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	pool        db.TxBeginner
}

func NewReservationUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	pool db.TxBeginner,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		pool:        pool,
	}
}

// ListSlots is read-only and side-effect free; repeated calls with no
// intervening reservation return identical results.
func (r *reservationUseCaseImpl) ListSlots(ctx context.Context, date string) ([]*slot.TimeSlot, error) {
	d, err := slot.NewDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	slots, err := r.slotRepo.ListByDate(ctx, d)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return slots, nil
}

// Reserve atomically flips the slot to unavailable and inserts the booking
// row. The slot state is re-checked under the transaction, so concurrent
// calls targeting the same slot yield exactly one success; the rest observe
// ErrSlotUnavailable. Any failure rolls the transaction back in full.
func (r *reservationUseCaseImpl) Reserve(ctx context.Context, params ReserveParams) (*booking.Booking, error) {
	d, err := slot.NewDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	entity, err := booking.NewBooking(d, params.TimeSlotID, params.Email, params.FirstName, params.LastName, params.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	bookingID, err := shared.RunInTxWithRetry(ctx, r.pool, reserveMaxRetries, func(tx db.DBTX) (uuid.UUID, error) {
		if err := r.slotRepo.ReserveIfAvailable(ctx, tx, params.TimeSlotID, d); err != nil {
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, errs.Mark(err, ErrSlotUnavailable)
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		id, err := r.bookingRepo.Create(ctx, tx, entity)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return id, nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write for store-assigned timestamps
	created, err := r.bookingRepo.FindByID(ctx, r.pool, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (r *reservationUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := r.bookingRepo.FindByID(ctx, r.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

// UpdateBookingStatus permits pending→completed only; anything else reports
// ErrInvalidStateTransition.
func (r *reservationUseCaseImpl) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	b, err := r.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	from := b.Status()
	if err := b.TransitionTo(status); err != nil {
		return nil, errs.Mark(err, ErrInvalidStateTransition)
	}

	if err := r.bookingRepo.UpdateStatus(ctx, r.pool, id, from, status); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrInvalidStateTransition)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	updated, err := r.bookingRepo.FindByID(ctx, r.pool, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

// SeedSlots is the administrative seeding step: it bulk-inserts slots for a
// date, skipping windows that already exist.
func (r *reservationUseCaseImpl) SeedSlots(ctx context.Context, date string, windows []SeedWindow) (int64, error) {
	d, err := slot.NewDate(date)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}
	if len(windows) == 0 {
		return 0, errs.Mark(errs.New("no slot windows supplied"), ErrValidation)
	}

	slots := make([]*slot.TimeSlot, 0, len(windows))
	for _, w := range windows {
		start, err := slot.ParseWallTime(w.Start)
		if err != nil {
			return 0, errs.Mark(err, ErrValidation)
		}
		end, err := slot.ParseWallTime(w.End)
		if err != nil {
			return 0, errs.Mark(err, ErrValidation)
		}
		s, err := slot.NewTimeSlot(d, start, end)
		if err != nil {
			return 0, errs.Mark(err, ErrValidation)
		}
		slots = append(slots, s)
	}

	inserted, err := shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (int64, error) {
		n, err := r.slotRepo.BulkCreate(ctx, tx, slots)
		if err != nil {
			return 0, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return n, nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
