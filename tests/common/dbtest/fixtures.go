//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestSlot(t *testing.T, db DBLike, date, startTime, endTime string) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO timeslots (id, date, start_time, end_time, available)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (date, start_time) DO NOTHING`,
		slotID, date, startTime, endTime)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM timeslots WHERE date = $1 AND start_time = $2", date, startTime).Scan(&slotID)
	}

	return slotID
}

func CreateTestBooking(t *testing.T, db DBLike, date string, slotID uuid.UUID, email string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "UPDATE timeslots SET available = false WHERE id = $1", slotID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO bookings (id, date, time_slot_id, email, status)
		VALUES ($1, $2, $3, $4, 'pending')`,
		bookingID, date, slotID, email)
	require.NoError(t, err)

	return bookingID
}

// truncates booking data between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bookings, timeslots RESTART IDENTITY CASCADE;")
	return err
}
