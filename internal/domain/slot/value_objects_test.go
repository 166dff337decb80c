//go:build unit

package slot_test

import (
	"testing"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := slot.NewDate("2026-06-20")
		require.NoError(t, err)
		assert.Equal(t, "2026-06-20", d.String())
		assert.False(t, d.IsZero())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{name: "empty", input: ""},
			{name: "US order", input: "06/20/2026"},
			{name: "missing day", input: "2026-06"},
			{name: "month out of range", input: "2026-13-01"},
			{name: "garbage", input: "next saturday"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := slot.NewDate(c.input)
				require.ErrorIs(t, err, slot.ErrInvalidDate)
			})
		}
	})
}

func TestParseWallTime(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		canonical string
		display   string
		errIs     error
	}{
		{name: "24-hour morning", input: "10:00", canonical: "10:00", display: "10:00 AM"},
		{name: "24-hour evening", input: "18:30", canonical: "18:30", display: "6:30 PM"},
		{name: "12-hour AM", input: "10:00 AM", canonical: "10:00", display: "10:00 AM"},
		{name: "12-hour PM", input: "2:00 PM", canonical: "14:00", display: "2:00 PM"},
		{name: "noon", input: "12:00 PM", canonical: "12:00", display: "12:00 PM"},
		{name: "midnight", input: "12:00 AM", canonical: "00:00", display: "12:00 AM"},
		{name: "lowercase meridiem", input: "2:00 pm", canonical: "14:00", display: "2:00 PM"},
		{name: "no space before meridiem", input: "2:00PM", canonical: "14:00", display: "2:00 PM"},
		{name: "empty", input: "", errIs: slot.ErrInvalidWallTime},
		{name: "hour out of range", input: "25:00", errIs: slot.ErrInvalidWallTime},
		{name: "minute out of range", input: "10:75", errIs: slot.ErrInvalidWallTime},
		{name: "meridiem hour zero", input: "0:30 PM", errIs: slot.ErrInvalidWallTime},
		{name: "no colon", input: "1000", errIs: slot.ErrInvalidWallTime},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, err := slot.ParseWallTime(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.canonical, w.String())
			assert.Equal(t, c.display, w.Display())
		})
	}
}

func TestWallTimeOrdering(t *testing.T) {
	morning, err := slot.ParseWallTime("10:00 AM")
	require.NoError(t, err)
	evening, err := slot.ParseWallTime("6:00 PM")
	require.NoError(t, err)

	assert.True(t, morning.Before(evening))
	assert.False(t, evening.Before(morning))
	assert.False(t, morning.Before(morning))

	// Canonical 24h strings must sort the same way as the times themselves.
	assert.Less(t, morning.String(), evening.String())
}

func TestWallTimeAt(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	d, err := slot.NewDate("2026-06-20")
	require.NoError(t, err)
	w, err := slot.ParseWallTime("2:00 PM")
	require.NoError(t, err)

	at := w.At(d, loc)
	assert.Equal(t, time.Date(2026, 6, 20, 14, 0, 0, 0, loc), at)
}
