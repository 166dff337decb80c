//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/openairphotobooth/booking-api/internal/handler/dto/request"
	"github.com/openairphotobooth/booking-api/internal/handler/dto/response"
	"github.com/openairphotobooth/booking-api/tests/common/dbtest"
	"github.com/openairphotobooth/booking-api/tests/common/httptest"
	"github.com/openairphotobooth/booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	timeslotsURL      = "/api/timeslots"
	bookingsURL       = "/api/bookings"
	adminTimeslotsURL = "/api/admin/timeslots"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// =============================================================================
// TestSeedTimeSlots - Admin slot seeding API tests
// =============================================================================

func (s *BookingSuite) TestSeedTimeSlots() {
	s.Run("Normal case: Admin can seed slots for a date", func() {
		t := s.T()

		reqBody := request.SeedTimeSlotsRequest{
			Date: "2026-06-20",
			Windows: []request.SeedWindowRequest{
				{Start: "10:00 AM", End: "2:00 PM"},
				{Start: "2:00 PM", End: "6:00 PM"},
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminTimeslotsURL, reqBody, s.Config.Admin.Token)
		require.Equal(t, http.StatusCreated, w.Code, "Should seed slots successfully")

		var seeded response.SeedTimeSlotsResponse
		err := httptest.DecodeResponseBody(t, w.Body, &seeded)
		require.NoError(t, err)
		require.Equal(t, int64(2), seeded.Inserted)

		// Seeded slots show up in the public listing
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, timeslotsURL+"?date=2026-06-20", nil, "")
		require.Equal(t, http.StatusOK, lw.Code)

		var slots []*response.TimeSlotResponse
		err = httptest.DecodeResponseBody(t, lw.Body, &slots)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		require.Equal(t, "10:00", slots[0].StartTime)
		require.True(t, slots[0].Available)
	})

	s.Run("Normal case: Reseeding the same date only inserts missing windows", func() {
		t := s.T()

		reqBody := request.SeedTimeSlotsRequest{
			Date: "2026-06-20",
			Windows: []request.SeedWindowRequest{
				{Start: "10:00 AM", End: "2:00 PM"},
			},
		}

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, adminTimeslotsURL, reqBody, s.Config.Admin.Token)
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, adminTimeslotsURL, reqBody, s.Config.Admin.Token)
		require.Equal(t, http.StatusCreated, w2.Code)

		var seeded response.SeedTimeSlotsResponse
		err := httptest.DecodeResponseBody(t, w2.Body, &seeded)
		require.NoError(t, err)
		require.Equal(t, int64(0), seeded.Inserted, "Existing windows should not be duplicated")
	})

	s.Run("Auth test - Rejected without admin token", func() {
		t := s.T()

		reqBody := request.SeedTimeSlotsRequest{
			Date:    "2026-06-20",
			Windows: []request.SeedWindowRequest{{Start: "10:00 AM", End: "2:00 PM"}},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminTimeslotsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "Should reject missing admin token")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminTimeslotsURL, reqBody, "wrong-token")
		require.Equal(t, http.StatusUnauthorized, w.Code, "Should reject wrong admin token")
	})
}

// =============================================================================
// TestListTimeSlots - Slot listing API tests
// =============================================================================

func (s *BookingSuite) TestListTimeSlots() {
	s.Run("Normal case: Reserved slots are listed as unavailable", func() {
		t := s.T()

		slotID := dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "10:00", "14:00")
		dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "14:00", "18:00")
		dbtest.CreateTestBooking(t, s.DB, "2026-06-20", slotID, "taken@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timeslotsURL+"?date=2026-06-20", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var slots []*response.TimeSlotResponse
		err := httptest.DecodeResponseBody(t, w.Body, &slots)
		require.NoError(t, err)
		require.Len(t, slots, 2)

		byID := map[uuid.UUID]*response.TimeSlotResponse{}
		for _, slot := range slots {
			byID[slot.ID] = slot
		}
		require.False(t, byID[slotID].Available, "Booked slot should be unavailable")
	})

	s.Run("Normal case: Empty list for a date with no slots", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timeslotsURL+"?date=2030-01-01", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var slots []*response.TimeSlotResponse
		err := httptest.DecodeResponseBody(t, w.Body, &slots)
		require.NoError(t, err)
		require.Empty(t, slots)
	})

	s.Run("Error case: Missing date parameter", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timeslotsURL, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestCreateBooking - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: Customer can book an open slot", func() {
		t := s.T()

		slotID := dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "10:00", "14:00")

		reqBody := request.CreateBookingRequest{
			Date:       "2026-06-20",
			TimeSlotID: slotID,
			Email:      "customer@example.com",
			FirstName:  "Jamie",
			LastName:   "Rivera",
			Phone:      "5551234567",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, "Should create booking successfully")

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, slotID, created.TimeSlotID)
		require.Equal(t, "pending", created.Status)
		require.Nil(t, created.CalendarEventID)

		// The slot is no longer offered
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, timeslotsURL+"?date=2026-06-20", nil, "")
		require.Equal(t, http.StatusOK, lw.Code)
		var slots []*response.TimeSlotResponse
		err = httptest.DecodeResponseBody(t, lw.Body, &slots)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		require.False(t, slots[0].Available)
	})

	s.Run("Error case: Second booking for the same slot conflicts", func() {
		t := s.T()

		slotID := dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "10:00", "14:00")

		reqBody := request.CreateBookingRequest{
			Date:       "2026-06-20",
			TimeSlotID: slotID,
			Email:      "first@example.com",
		}
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w1.Code)

		reqBody.Email = "second@example.com"
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w2.Code, "Double booking should be rejected")
	})

	s.Run("Normal case: Exactly one of many concurrent requests wins the slot", func() {
		t := s.T()

		slotID := dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "10:00", "14:00")

		const attempts = 10
		codes := make(chan int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				reqBody := request.CreateBookingRequest{
					Date:       "2026-06-20",
					TimeSlotID: slotID,
					Email:      fmt.Sprintf("racer%d@example.com", n),
				}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
				codes <- w.Code
			}(i)
		}
		wg.Wait()
		close(codes)

		var created, conflicted int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created, "Exactly one request should win the slot")
		require.Equal(t, attempts-1, conflicted)
	})

	s.Run("Error case: Unknown slot is treated as unavailable", func() {
		t := s.T()

		reqBody := request.CreateBookingRequest{
			Date:       "2026-06-20",
			TimeSlotID: uuid.New(),
			Email:      "customer@example.com",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: Slot belonging to a different date conflicts", func() {
		t := s.T()

		slotID := dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "10:00", "14:00")

		reqBody := request.CreateBookingRequest{
			Date:       "2026-06-21",
			TimeSlotID: slotID,
			Email:      "customer@example.com",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, "Date mismatch should be rejected as unavailable")

		// The slot on its real date stays open
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, timeslotsURL+"?date=2026-06-20", nil, "")
		require.Equal(t, http.StatusOK, lw.Code)
		var slots []*response.TimeSlotResponse
		err := httptest.DecodeResponseBody(t, lw.Body, &slots)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		require.True(t, slots[0].Available)
	})

	s.Run("Error case: Missing email fails validation", func() {
		t := s.T()

		slotID := dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "10:00", "14:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"date":       "2026-06-20",
			"timeSlotId": slotID.String(),
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestGetBooking - Booking detail API tests
// =============================================================================

func (s *BookingSuite) TestGetBooking() {
	s.Run("Normal case: Booking retrieved by ID", func() {
		t := s.T()

		slotID := dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "10:00", "14:00")
		reqBody := request.CreateBookingRequest{
			Date:       "2026-06-20",
			TimeSlotID: slotID,
			Email:      "customer@example.com",
			FirstName:  "Jamie",
		}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, cw.Code)

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var fetched response.BookingResponse
		err = httptest.DecodeResponseBody(t, w.Body, &fetched)
		require.NoError(t, err)
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, "customer@example.com", fetched.Email)
		require.Equal(t, "Jamie", fetched.FirstName)
	})

	s.Run("Error case: Returns 404 for non-existent ID", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+uuid.New().String(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: Returns 400 for malformed ID", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/not-a-uuid", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestUpdateBookingStatus - Booking status transition API tests
// =============================================================================

func (s *BookingSuite) TestUpdateBookingStatus() {
	s.Run("Normal case: Pending booking can be completed", func() {
		t := s.T()

		slotID := dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "10:00", "14:00")
		bookingID := dbtest.CreateTestBooking(t, s.DB, "2026-06-20", slotID, "customer@example.com")

		url := bookingsURL + "/" + bookingID.String() + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateBookingStatusRequest{Status: "completed"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var updated response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &updated)
		require.NoError(t, err)
		require.Equal(t, "completed", updated.Status)
	})

	s.Run("Error case: Completed booking cannot go back to pending", func() {
		t := s.T()

		slotID := dbtest.CreateTestSlot(t, s.DB, "2026-06-20", "10:00", "14:00")
		bookingID := dbtest.CreateTestBooking(t, s.DB, "2026-06-20", slotID, "customer@example.com")

		url := bookingsURL + "/" + bookingID.String() + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateBookingStatusRequest{Status: "completed"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateBookingStatusRequest{Status: "pending"}, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: Returns 404 for non-existent booking", func() {
		t := s.T()

		url := bookingsURL + "/" + uuid.New().String() + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateBookingStatusRequest{Status: "completed"}, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
