//go:build unit

package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openairphotobooth/booking-api/client"
	"github.com/openairphotobooth/booking-api/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotServer struct {
	*httptest.Server
	listCalls int
	slots     []client.TimeSlot
}

func newSlotServer(t *testing.T, slots []client.TimeSlot) *slotServer {
	t.Helper()
	s := &slotServer{slots: slots}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/timeslots", func(w http.ResponseWriter, r *http.Request) {
		s.listCalls++
		assert.NotEmpty(t, r.URL.Query().Get("date"))
		_ = json.NewEncoder(w).Encode(s.slots)
	})
	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		var req client.CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(client.Booking{
			ID:         uuid.New(),
			Date:       req.Date,
			TimeSlotID: req.TimeSlotID,
			Email:      req.Email,
			Status:     "pending",
		})
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func testSlots() []client.TimeSlot {
	return []client.TimeSlot{
		{ID: uuid.New(), Date: "2026-06-20", StartTime: "10:00 AM", EndTime: "2:00 PM", Available: true},
		{ID: uuid.New(), Date: "2026-06-20", StartTime: "2:00 PM", EndTime: "6:00 PM", Available: false},
	}
}

func TestListSlots(t *testing.T) {
	t.Run("serves fresh entries from cache", func(t *testing.T) {
		server := newSlotServer(t, testSlots())
		clk := clock.NewMockClock(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
		c := client.New(server.URL, client.WithClock(clk))

		first, err := c.ListSlots(t.Context(), "2026-06-20")
		require.NoError(t, err)
		require.Equal(t, 1, server.listCalls)

		second, err := c.ListSlots(t.Context(), "2026-06-20")
		require.NoError(t, err)
		assert.Equal(t, 1, server.listCalls, "fresh cache entry must not refetch")
		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("refetches after the TTL elapses", func(t *testing.T) {
		server := newSlotServer(t, testSlots())
		clk := clock.NewMockClock(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
		c := client.New(server.URL, client.WithClock(clk), client.WithSlotTTL(2*time.Minute))

		_, err := c.ListSlots(t.Context(), "2026-06-20")
		require.NoError(t, err)

		clk.Add(2 * time.Minute)
		_, err = c.ListSlots(t.Context(), "2026-06-20")
		require.NoError(t, err)
		assert.Equal(t, 2, server.listCalls)
	})

	t.Run("caller mutations do not leak into the cache", func(t *testing.T) {
		server := newSlotServer(t, testSlots())
		c := client.New(server.URL)

		first, err := c.ListSlots(t.Context(), "2026-06-20")
		require.NoError(t, err)
		first[0].Available = false
		first[0].StartTime = "mangled"

		second, err := c.ListSlots(t.Context(), "2026-06-20")
		require.NoError(t, err)
		require.Equal(t, 1, server.listCalls)
		assert.True(t, second[0].Available)
		assert.Equal(t, "10:00 AM", second[0].StartTime)
	})

	t.Run("caches each date independently", func(t *testing.T) {
		server := newSlotServer(t, testSlots())
		c := client.New(server.URL)

		_, err := c.ListSlots(t.Context(), "2026-06-20")
		require.NoError(t, err)
		_, err = c.ListSlots(t.Context(), "2026-06-21")
		require.NoError(t, err)
		assert.Equal(t, 2, server.listCalls)
	})

	t.Run("decodes the API error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Date parameter is required"})
		}))
		t.Cleanup(server.Close)
		c := client.New(server.URL)

		_, err := c.ListSlots(t.Context(), "")
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Date parameter is required", apiErr.Message)
	})
}

func TestIsDateAvailable(t *testing.T) {
	t.Run("true when any slot is open", func(t *testing.T) {
		server := newSlotServer(t, testSlots())
		c := client.New(server.URL)

		available, err := c.IsDateAvailable(t.Context(), "2026-06-20")
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("false when every slot is taken", func(t *testing.T) {
		slots := testSlots()
		for i := range slots {
			slots[i].Available = false
		}
		server := newSlotServer(t, slots)
		c := client.New(server.URL)

		available, err := c.IsDateAvailable(t.Context(), "2026-06-20")
		require.NoError(t, err)
		assert.False(t, available)
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("invalidates the booked date", func(t *testing.T) {
		server := newSlotServer(t, testSlots())
		c := client.New(server.URL)

		slots, err := c.ListSlots(t.Context(), "2026-06-20")
		require.NoError(t, err)
		require.Equal(t, 1, server.listCalls)

		created, err := c.CreateBooking(t.Context(), client.CreateBookingRequest{
			Date:       "2026-06-20",
			TimeSlotID: slots[0].ID,
			Email:      "customer@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", created.Status)

		_, err = c.ListSlots(t.Context(), "2026-06-20")
		require.NoError(t, err)
		assert.Equal(t, 2, server.listCalls, "booking must drop the date's cache entry")
	})

	t.Run("surfaces a slot conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Time slot is no longer available"})
		}))
		t.Cleanup(server.Close)
		c := client.New(server.URL)

		_, err := c.CreateBooking(t.Context(), client.CreateBookingRequest{
			Date:       "2026-06-20",
			TimeSlotID: uuid.New(),
			Email:      "customer@example.com",
		})
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	})
}

func TestGetBooking(t *testing.T) {
	bookingID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/"+bookingID.String(), r.URL.Path)
		_ = json.NewEncoder(w).Encode(client.Booking{ID: bookingID, Date: "2026-06-20", Status: "completed"})
	}))
	t.Cleanup(server.Close)
	c := client.New(server.URL)

	booking, err := c.GetBooking(t.Context(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
	assert.Equal(t, "completed", booking.Status)
}
