// Package gcal mirrors bookings into Google Calendar and reads busy windows
// back out. The Calendar API is small enough here that the client speaks the
// REST surface directly over net/http with service-account auth.
package gcal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/openairphotobooth/booking-api/internal/domain/slot"
	"github.com/openairphotobooth/booking-api/internal/pkg/config"
	"github.com/openairphotobooth/booking-api/internal/pkg/errs"
	"github.com/openairphotobooth/booking-api/internal/usecase"
)

type Client struct {
	hc         *http.Client
	baseURL    string
	calendarID string
	location   *time.Location
	tokens     *tokenSource
}

var _ usecase.Calendar = (*Client)(nil)

func NewClient(cfg config.CalendarConfig, location *time.Location) (*Client, error) {
	if cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return nil, errs.New("google calendar requires GOOGLE_CLIENT_EMAIL and GOOGLE_PRIVATE_KEY")
	}

	hc := &http.Client{Timeout: cfg.HTTPTimeout}
	tokens, err := newTokenSource(hc, cfg.TokenURL, cfg.ClientEmail, cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	return &Client{
		hc:         hc,
		baseURL:    cfg.APIBaseURL,
		calendarID: cfg.CalendarID,
		location:   location,
		tokens:     tokens,
	}, nil
}

type eventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type calendarEvent struct {
	ID          string    `json:"id,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Description string    `json:"description,omitempty"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
	Attendees   []struct {
		Email string `json:"email"`
	} `json:"attendees,omitempty"`
	Reminders *struct {
		UseDefault bool `json:"useDefault"`
	} `json:"reminders,omitempty"`
}

// ListBlockedWindows returns busy intervals for the date in the business
// timezone. The calendar may contain holds unrelated to the booking system
// (manually added events), which is exactly why this is advisory only.
func (c *Client) ListBlockedWindows(ctx context.Context, date slot.Date) ([]usecase.BlockedWindow, error) {
	dayStart := time.Date(date.Time().Year(), date.Time().Month(), date.Time().Day(), 0, 0, 0, 0, c.location)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	q := url.Values{
		"timeMin":      {dayStart.Format(time.RFC3339)},
		"timeMax":      {dayEnd.Format(time.RFC3339)},
		"singleEvents": {"true"},
		"orderBy":      {"startTime"},
	}
	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(c.calendarID), q.Encode())

	var body struct {
		Items []calendarEvent `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &body); err != nil {
		return nil, err
	}

	windows := make([]usecase.BlockedWindow, 0, len(body.Items))
	for _, item := range body.Items {
		start, err := c.parseEventTime(item.Start)
		if err != nil {
			continue
		}
		end, err := c.parseEventTime(item.End)
		if err != nil {
			continue
		}
		windows = append(windows, usecase.BlockedWindow{Start: start, End: end})
	}
	return windows, nil
}

// CreateEvent inserts the mirror event and returns its identifier. The API
// has no idempotency key, so a retried insert creates a duplicate; callers
// must track "already published" via the booking's stamp.
func (c *Client) CreateEvent(ctx context.Context, ev usecase.CalendarEvent) (string, error) {
	payload := map[string]any{
		"summary":     ev.Summary,
		"description": ev.Description,
		"start": eventTime{
			DateTime: ev.Start.Format("2006-01-02T15:04:05"),
			TimeZone: c.location.String(),
		},
		"end": eventTime{
			DateTime: ev.End.Format("2006-01-02T15:04:05"),
			TimeZone: c.location.String(),
		},
		"attendees": []map[string]string{{"email": ev.AttendeeEmail}},
		"reminders": map[string]bool{"useDefault": true},
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))

	var created calendarEvent
	if err := c.do(ctx, http.MethodPost, endpoint, payload, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", errs.New("calendar event created without an ID")
	}
	return created.ID, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errs.Wrap(err, "failed to encode calendar request")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build calendar request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return errs.Wrap(err, "calendar request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return errs.New(fmt.Sprintf("calendar API error: %s: %s", resp.Status, string(raw)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Wrap(err, "failed to decode calendar response")
		}
	}
	return nil
}

func (c *Client) parseEventTime(et eventTime) (time.Time, error) {
	if et.DateTime != "" {
		return time.Parse(time.RFC3339, et.DateTime)
	}
	// All-day events carry only a date; treat them as blocking the whole day.
	return time.ParseInLocation("2006-01-02", et.Date, c.location)
}
