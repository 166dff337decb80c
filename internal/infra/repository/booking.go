package repository

import (
	"context"
	"errors"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/booking"
	"github.com/openairphotobooth/booking-api/internal/domain/slot"
	"github.com/openairphotobooth/booking-api/internal/infra"
	"github.com/openairphotobooth/booking-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (id, date, time_slot_id, email, first_name, last_name, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	`, b.ID(), b.Date().Time(), b.TimeSlotID(), b.Email(), b.FirstName(), b.LastName(), b.Phone(), b.Status().String())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return uuid.Nil, infra.WrapRepoErr("duplicate booking", err, infra.KindDuplicateKey)
			case "23503":
				return uuid.Nil, infra.WrapRepoErr("booking references unknown time slot", err, infra.KindForeignKeyViolated)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return b.ID(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, date, time_slot_id, email, first_name, last_name, phone, status, calendar_event_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

// FindByIDWithSlot joins the booking with its time slot, the shape the
// calendar mirror needs to build an event.
func (r *BookingRepository) FindByIDWithSlot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, *slot.TimeSlot, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT b.id, b.date, b.time_slot_id, b.email, b.first_name, b.last_name, b.phone, b.status, b.calendar_event_id, b.created_at, b.updated_at,
		       t.id, t.date, t.start_time, t.end_time, t.available, t.created_at, t.updated_at
		FROM bookings b
		JOIN timeslots t ON b.time_slot_id = t.id
		WHERE b.id = $1
	`, id)

	var (
		bID             uuid.UUID
		bDate           time.Time
		timeSlotID      uuid.UUID
		email           string
		firstName       string
		lastName        string
		phone           string
		status          string
		calendarEventID *string
		bCreatedAt      time.Time
		bUpdatedAt      time.Time

		sID        uuid.UUID
		sDate      time.Time
		start, end string
		available  bool
		sCreatedAt time.Time
		sUpdatedAt time.Time
	)
	err := row.Scan(
		&bID, &bDate, &timeSlotID, &email, &firstName, &lastName, &phone, &status, &calendarEventID, &bCreatedAt, &bUpdatedAt,
		&sID, &sDate, &start, &end, &available, &sCreatedAt, &sUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to find booking with slot", err)
	}

	b := booking.ReconstructBooking(
		bID, slot.DateOf(bDate), timeSlotID,
		email, firstName, lastName, phone,
		booking.Status(status), calendarEventID,
		bCreatedAt, bUpdatedAt,
	)

	startWT, err := slot.ParseWallTime(start)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("malformed slot start time", err)
	}
	endWT, err := slot.ParseWallTime(end)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("malformed slot end time", err)
	}
	s := slot.ReconstructTimeSlot(sID, slot.DateOf(sDate), startWT, endWT, available, sCreatedAt, sUpdatedAt)

	return b, s, nil
}

// UpdateStatus transitions the booking only when the stored status still
// matches the expected one, so concurrent wizard submissions cannot skip or
// repeat a transition.
func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE bookings
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
	`, id, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

// StampCalendarEvent writes the mirror event identifier once. A second stamp
// attempt affects zero rows and reports a conflict, which publish callers use
// as their duplicate guard.
func (r *BookingRepository) StampCalendarEvent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, eventID string) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE bookings
		SET calendar_event_id = $2, updated_at = now()
		WHERE id = $1 AND calendar_event_id IS NULL
	`, id, eventID)
	if err != nil {
		return infra.WrapRepoErr("failed to stamp calendar event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("calendar event already stamped", nil, infra.KindConflict)
	}
	return nil
}

type bookingRow interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingRow) (*booking.Booking, error) {
	var (
		id              uuid.UUID
		date            time.Time
		timeSlotID      uuid.UUID
		email           string
		firstName       string
		lastName        string
		phone           string
		status          string
		calendarEventID *string
		createdAt       time.Time
		updatedAt       time.Time
	)
	if err := row.Scan(&id, &date, &timeSlotID, &email, &firstName, &lastName, &phone, &status, &calendarEventID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, slot.DateOf(date), timeSlotID,
		email, firstName, lastName, phone,
		booking.Status(status), calendarEventID,
		createdAt, updatedAt,
	), nil
}
