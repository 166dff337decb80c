//go:build unit

package booking_test

import (
	"testing"

	"github.com/openairphotobooth/booking-api/internal/domain/booking"
	"github.com/openairphotobooth/booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Nil(t, actual.CalendarEventID())
		assert.False(t, actual.IsPublished())
		assert.Equal(t, "Jamie Rivera", actual.CustomerName())
	})

	t.Run("email validation", func(t *testing.T) {
		runBookingCases(t, []bookingCase{
			{
				name:   "valid email OK",
				mutate: func(b *builder.BookingBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email NG",
				mutate: func(b *builder.BookingBuilder) { b.WithEmail("") },
				errIs:  booking.ErrInvalidEmail,
			},
			{
				name:   "missing at sign NG",
				mutate: func(b *builder.BookingBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  booking.ErrInvalidEmail,
			},
			{
				name:   "missing domain NG",
				mutate: func(b *builder.BookingBuilder) { b.WithEmail("someone@") },
				errIs:  booking.ErrInvalidEmail,
			},
		})
	})

	t.Run("slot reference validation", func(t *testing.T) {
		runBookingCases(t, []bookingCase{
			{
				name:   "nil slot ID NG",
				mutate: func(b *builder.BookingBuilder) { b.WithoutTimeSlot() },
				errIs:  booking.ErrEmptyTimeSlot,
			},
		})
	})
}

func TestBookingStatusMachine(t *testing.T) {
	t.Run("pending to completed OK", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.TransitionTo(booking.StatusCompleted))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("invalid transitions", func(t *testing.T) {
		cases := []struct {
			name  string
			from  *builder.BookingBuilder
			to    booking.Status
			errIs error
		}{
			{
				name:  "completed to pending NG",
				from:  builder.NewBookingBuilder().AsCompleted(),
				to:    booking.StatusPending,
				errIs: booking.ErrInvalidTransition,
			},
			{
				name:  "completed to completed NG",
				from:  builder.NewBookingBuilder().AsCompleted(),
				to:    booking.StatusCompleted,
				errIs: booking.ErrInvalidTransition,
			},
			{
				name:  "pending to pending NG",
				from:  builder.NewBookingBuilder(),
				to:    booking.StatusPending,
				errIs: booking.ErrInvalidTransition,
			},
			{
				name:  "unknown status NG",
				from:  builder.NewBookingBuilder(),
				to:    booking.Status("cancelled"),
				errIs: booking.ErrInvalidStatus,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := c.from.BuildReconstructed()
				err := b.TransitionTo(c.to)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestStampCalendarEvent(t *testing.T) {
	t.Run("stamp once OK", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.StampCalendarEvent("evt-123"))
		require.NotNil(t, b.CalendarEventID())
		assert.Equal(t, "evt-123", *b.CalendarEventID())
		assert.True(t, b.IsPublished())
	})

	t.Run("second stamp NG", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithCalendarEvent("evt-123").BuildReconstructed()
		err := b.StampCalendarEvent("evt-456")
		require.ErrorIs(t, err, booking.ErrCalendarEventStamped)
		assert.Equal(t, "evt-123", *b.CalendarEventID())
	})

	t.Run("empty event ID NG", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		err = b.StampCalendarEvent("  ")
		require.ErrorIs(t, err, booking.ErrEmptyCalendarEventID)
		assert.False(t, b.IsPublished())
	})
}

func runBookingCases(t *testing.T, cases []bookingCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
