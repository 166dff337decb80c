// Package client is a Go consumer of the booking API. It keeps a short-lived
// per-date cache of slot listings so wizard surfaces can re-render without
// hammering the API, and invalidates the cached date after a reservation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/openairphotobooth/booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

const defaultSlotTTL = 5 * time.Minute

type TimeSlot struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Available bool      `json:"available"`
}

type Booking struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	TimeSlotID      uuid.UUID `json:"timeSlotId"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Status          string    `json:"status"`
	CalendarEventID *string   `json:"calendarEventId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateBookingRequest struct {
	Date       string    `json:"date"`
	TimeSlotID uuid.UUID `json:"timeSlotId"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	Phone      string    `json:"phone,omitempty"`
}

// APIError carries the server's status code and error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking api: %d %s", e.StatusCode, e.Message)
}

type cacheEntry struct {
	slots     []TimeSlot
	fetchedAt time.Time
}

type Client struct {
	baseURL string
	httpc   *http.Client
	ttl     time.Duration
	clock   clock.Clock

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type Option func(*Client)

func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithSlotTTL overrides how long a date's slot listing is served from cache.
func WithSlotTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

func WithClock(clk clock.Clock) Option {
	return func(c *Client) { c.clock = clk }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		ttl:     defaultSlotTTL,
		clock:   clock.NewRealClock(),
		cache:   make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListSlots returns the slots for a date, served from cache while the entry is
// fresh. Entries older than the TTL are refetched. Callers get their own copy,
// so mutating the result cannot corrupt later cached reads.
func (c *Client) ListSlots(ctx context.Context, date string) ([]TimeSlot, error) {
	c.mu.Lock()
	if entry, ok := c.cache[date]; ok && c.clock.Now().Sub(entry.fetchedAt) < c.ttl {
		slots := copySlots(entry.slots)
		c.mu.Unlock()
		return slots, nil
	}
	c.mu.Unlock()

	var slots []TimeSlot
	query := url.Values{"date": {date}}
	if err := c.do(ctx, http.MethodGet, "/api/timeslots?"+query.Encode(), nil, &slots); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[date] = cacheEntry{slots: copySlots(slots), fetchedAt: c.clock.Now()}
	c.mu.Unlock()
	return slots, nil
}

func copySlots(slots []TimeSlot) []TimeSlot {
	if slots == nil {
		return nil
	}
	out := make([]TimeSlot, len(slots))
	copy(out, slots)
	return out
}

// IsDateAvailable reports whether any slot on the date is still open.
func (c *Client) IsDateAvailable(ctx context.Context, date string) (bool, error) {
	slots, err := c.ListSlots(ctx, date)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s.Available {
			return true, nil
		}
	}
	return false, nil
}

// Invalidate drops the cached listing for a date. Called after a reservation
// so the next read reflects the taken slot.
func (c *Client) Invalidate(date string) {
	c.mu.Lock()
	delete(c.cache, date)
	c.mu.Unlock()
}

// CreateBooking reserves a slot and invalidates the date's cached listing.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	var created Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &created); err != nil {
		return nil, err
	}
	c.Invalidate(req.Date)
	return &created, nil
}

func (c *Client) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var b Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/"+id.String(), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
