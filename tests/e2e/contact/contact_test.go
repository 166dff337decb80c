//go:build e2e

package contact_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/openairphotobooth/booking-api/internal/handler/dto/request"
	"github.com/openairphotobooth/booking-api/tests/common/httptest"
	"github.com/openairphotobooth/booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const contactsURL = "/api/contacts"

type ContactSuite struct {
	e2e.SharedSuite
}

func (s *ContactSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestContactSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ContactSuite))
}

// =============================================================================
// TestUpsertContact - CRM contact push API tests
// =============================================================================

func (s *ContactSuite) TestUpsertContact() {
	s.Run("Normal case: Contact is pushed to the CRM with event details", func() {
		t := s.T()

		reqBody := request.UpsertContactRequest{
			Email:     "customer@example.com",
			FirstName: "Jamie",
			LastName:  "Rivera",
			Phone:     "5551234567",
			Location:  "Central Park",
			Date:      "2026-06-20",
			TimeSlot:  "2:00 PM",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contactsURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, "Should push contact successfully")

		captured := s.CRM.Captured()
		require.Len(t, captured, 1)
		contact := captured[0]
		require.Equal(t, "customer@example.com", contact.Email)
		require.Equal(t, "Jamie", contact.FirstName)
		require.Equal(t, "Central Park", contact.EventLocation)
		require.NotNil(t, contact.EventTime)
		require.Equal(t, time.June, contact.EventTime.Month())
		require.Equal(t, 14, contact.EventTime.Hour())
	})

	s.Run("Normal case: Malformed event hints are dropped, not rejected", func() {
		t := s.T()

		reqBody := request.UpsertContactRequest{
			Email:     "customer@example.com",
			FirstName: "Jamie",
			LastName:  "Rivera",
			Phone:     "5551234567",
			Date:      "June 20th",
			TimeSlot:  "around 2",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contactsURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code)

		captured := s.CRM.Captured()
		require.Len(t, captured, 1)
		require.Nil(t, captured[0].EventTime)
	})

	s.Run("Error case: Missing required fields fail validation", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contactsURL, map[string]any{
			"email": "customer@example.com",
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		require.Empty(t, s.CRM.Captured(), "Invalid contact should not reach the CRM")
	})
}
