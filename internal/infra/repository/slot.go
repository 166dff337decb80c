package repository

import (
	"context"
	"errors"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/slot"
	"github.com/openairphotobooth/booking-api/internal/infra"
	"github.com/openairphotobooth/booking-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// ListByDate returns every slot for the date ordered by start time. Times are
// stored canonically as 24-hour "15:04" strings, so lexical order is
// chronological order.
func (r *SlotRepository) ListByDate(ctx context.Context, date slot.Date) ([]*slot.TimeSlot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, date, start_time, end_time, available, created_at, updated_at
		FROM timeslots
		WHERE date = $1
		ORDER BY start_time
	`, date.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}
	defer rows.Close()

	var slots []*slot.TimeSlot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read time slots", err)
	}

	return slots, nil
}

func (r *SlotRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*slot.TimeSlot, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, date, start_time, end_time, available, created_at, updated_at
		FROM timeslots
		WHERE id = $1
	`, id)

	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find time slot", err)
	}
	return s, nil
}

// ReserveIfAvailable is the compare-and-swap that settles reservation races.
// The row only flips when it still matches the requested date and is still
// available; zero rows affected means the caller lost the race (or targeted a
// missing slot or the wrong date, which the reservation contract treats the
// same way).
func (r *SlotRepository) ReserveIfAvailable(ctx context.Context, tx db.DBTX, id uuid.UUID, date slot.Date) error {
	tag, err := tx.Exec(ctx, `
		UPDATE timeslots
		SET available = FALSE, updated_at = now()
		WHERE id = $1 AND date = $2 AND available = TRUE
	`, id, date.Time())
	if err != nil {
		return infra.WrapRepoErr("failed to reserve time slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time slot is no longer available", nil, infra.KindConflict)
	}
	return nil
}

// BulkCreate inserts seeded slots, skipping any (date, start_time) pair that
// already exists so re-running the seed is harmless.
func (r *SlotRepository) BulkCreate(ctx context.Context, tx db.DBTX, slots []*slot.TimeSlot) (int64, error) {
	var inserted int64
	for _, s := range slots {
		tag, err := tx.Exec(ctx, `
			INSERT INTO timeslots (id, date, start_time, end_time, available, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
			ON CONFLICT (date, start_time) DO NOTHING
		`, s.ID(), s.Date().Time(), s.Start().String(), s.End().String(), s.Available())
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return inserted, infra.WrapRepoErr("duplicate time slot", err, infra.KindDuplicateKey)
			}
			return inserted, infra.WrapRepoErr("failed to insert time slot", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

type slotRow interface {
	Scan(dest ...any) error
}

func scanSlot(row slotRow) (*slot.TimeSlot, error) {
	var (
		id         uuid.UUID
		date       time.Time
		start, end string
		available  bool
		createdAt  time.Time
		updatedAt  time.Time
	)
	if err := row.Scan(&id, &date, &start, &end, &available, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	startWT, err := slot.ParseWallTime(start)
	if err != nil {
		return nil, err
	}
	endWT, err := slot.ParseWallTime(end)
	if err != nil {
		return nil, err
	}

	return slot.ReconstructTimeSlot(id, slot.DateOf(date), startWT, endWT, available, createdAt, updatedAt), nil
}
