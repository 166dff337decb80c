//go:build unit

package gcal_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/slot"
	"github.com/openairphotobooth/booking-api/internal/infra/gcal"
	"github.com/openairphotobooth/booking-api/internal/pkg/config"
	"github.com/openairphotobooth/booking-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrivateKeyPEM(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}
	return string(pem.EncodeToMemory(block))
}

// newTestServer stands in for both the OAuth2 token endpoint and the calendar
// API. handler receives only calendar requests; token exchanges are counted.
func newTestServer(t *testing.T, tokenCalls *int, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.Form.Get("grant_type"))
		assert.NotEmpty(t, r.Form.Get("assertion"))
		*tokenCalls++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-access-token",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, server *httptest.Server) *gcal.Client {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	client, err := gcal.NewClient(config.CalendarConfig{
		CalendarID:  "info@openairphotobooth.rentals",
		ClientEmail: "svc@project.iam.gserviceaccount.com",
		PrivateKey:  testPrivateKeyPEM(t),
		TokenURL:    server.URL + "/token",
		APIBaseURL:  server.URL,
		HTTPTimeout: 5 * time.Second,
	}, loc)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("rejects missing credentials", func(t *testing.T) {
		loc := time.UTC
		_, err := gcal.NewClient(config.CalendarConfig{}, loc)
		require.Error(t, err)
	})

	t.Run("rejects malformed private key", func(t *testing.T) {
		_, err := gcal.NewClient(config.CalendarConfig{
			ClientEmail: "svc@project.iam.gserviceaccount.com",
			PrivateKey:  "not a key",
		}, time.UTC)
		require.Error(t, err)
	})
}

func TestListBlockedWindows(t *testing.T) {
	t.Run("returns timed and all-day events", func(t *testing.T) {
		var tokenCalls int
		server := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "Bearer test-access-token", r.Header.Get("Authorization"))
			q := r.URL.Query()
			assert.NotEmpty(t, q.Get("timeMin"))
			assert.NotEmpty(t, q.Get("timeMax"))
			assert.Equal(t, "true", q.Get("singleEvents"))
			assert.Equal(t, "startTime", q.Get("orderBy"))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{
						"summary": "Photo Booth Booking - Jamie Rivera",
						"start":   map[string]string{"dateTime": "2026-06-20T10:00:00-04:00"},
						"end":     map[string]string{"dateTime": "2026-06-20T14:00:00-04:00"},
					},
					{
						"summary": "Maintenance day",
						"start":   map[string]string{"date": "2026-06-20"},
						"end":     map[string]string{"date": "2026-06-21"},
					},
				},
			})
		})
		client := newTestClient(t, server)

		date, err := slot.NewDate("2026-06-20")
		require.NoError(t, err)

		windows, err := client.ListBlockedWindows(t.Context(), date)
		require.NoError(t, err)
		require.Len(t, windows, 2)
		assert.Equal(t, 10, windows[0].Start.Hour())
		assert.Equal(t, 1, tokenCalls)
	})

	t.Run("token is cached across calls", func(t *testing.T) {
		var tokenCalls int
		server := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
		})
		client := newTestClient(t, server)

		date, err := slot.NewDate("2026-06-20")
		require.NoError(t, err)

		_, err = client.ListBlockedWindows(t.Context(), date)
		require.NoError(t, err)
		_, err = client.ListBlockedWindows(t.Context(), date)
		require.NoError(t, err)
		assert.Equal(t, 1, tokenCalls)
	})

	t.Run("upstream error surfaces", func(t *testing.T) {
		var tokenCalls int
		server := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "quota exceeded", http.StatusForbidden)
		})
		client := newTestClient(t, server)

		date, err := slot.NewDate("2026-06-20")
		require.NoError(t, err)

		_, err = client.ListBlockedWindows(t.Context(), date)
		require.Error(t, err)
	})
}

func TestCreateEvent(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	ev := usecase.CalendarEvent{
		Summary:       "Photo Booth Booking - Jamie Rivera",
		Description:   "Photo booth rental booking\nEmail: customer@example.com\nPhone: 5551234567",
		Start:         time.Date(2026, 6, 20, 10, 0, 0, 0, loc),
		End:           time.Date(2026, 6, 20, 14, 0, 0, 0, loc),
		AttendeeEmail: "customer@example.com",
	}

	t.Run("posts event and returns its ID", func(t *testing.T) {
		var tokenCalls int
		server := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)

			var payload struct {
				Summary string `json:"summary"`
				Start   struct {
					DateTime string `json:"dateTime"`
					TimeZone string `json:"timeZone"`
				} `json:"start"`
				Attendees []struct {
					Email string `json:"email"`
				} `json:"attendees"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, ev.Summary, payload.Summary)
			assert.Equal(t, "2026-06-20T10:00:00", payload.Start.DateTime)
			assert.Equal(t, "America/New_York", payload.Start.TimeZone)
			require.Len(t, payload.Attendees, 1)
			assert.Equal(t, "customer@example.com", payload.Attendees[0].Email)

			_ = json.NewEncoder(w).Encode(map[string]string{"id": "evt-upstream-1"})
		})
		client := newTestClient(t, server)

		id, err := client.CreateEvent(t.Context(), ev)
		require.NoError(t, err)
		assert.Equal(t, "evt-upstream-1", id)
	})

	t.Run("missing ID in response is an error", func(t *testing.T) {
		var tokenCalls int
		server := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{})
		})
		client := newTestClient(t, server)

		_, err := client.CreateEvent(t.Context(), ev)
		require.Error(t, err)
	})

	t.Run("upstream failure surfaces", func(t *testing.T) {
		var tokenCalls int
		server := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "backend error", http.StatusInternalServerError)
		})
		client := newTestClient(t, server)

		_, err := client.CreateEvent(t.Context(), ev)
		require.Error(t, err)
	})
}
