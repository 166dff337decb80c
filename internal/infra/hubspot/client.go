// Package hubspot pushes wizard contacts into the HubSpot CRM.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/openairphotobooth/booking-api/internal/pkg/config"
	"github.com/openairphotobooth/booking-api/internal/pkg/errs"
	"github.com/openairphotobooth/booking-api/internal/usecase"
)

const contactsPath = "/crm/v3/objects/contacts"

type Client struct {
	hc          *http.Client
	baseURL     string
	accessToken string
	ownerID     string
}

var _ usecase.CRM = (*Client)(nil)

func NewClient(cfg config.CRMConfig) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, errs.New("hubspot requires HUBSPOT_ACCESS_TOKEN")
	}
	return &Client{
		hc:          &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		ownerID:     cfg.OwnerID,
	}, nil
}

// UpsertContact creates the contact and, when HubSpot reports the email
// already exists, patches the existing record instead.
func (c *Client) UpsertContact(ctx context.Context, contact usecase.Contact) error {
	props := c.properties(contact)

	status, body, err := c.do(ctx, http.MethodPost, c.baseURL+contactsPath, props)
	if err != nil {
		return err
	}
	if status < 400 {
		return nil
	}
	if status != http.StatusConflict {
		return errs.New(fmt.Sprintf("hubspot contact create failed: %d: %s", status, body))
	}

	patchURL := fmt.Sprintf("%s%s/%s?idProperty=email", c.baseURL, contactsPath, url.PathEscape(contact.Email))
	status, body, err = c.do(ctx, http.MethodPatch, patchURL, props)
	if err != nil {
		return err
	}
	if status >= 400 {
		return errs.New(fmt.Sprintf("hubspot contact update failed: %d: %s", status, body))
	}
	return nil
}

func (c *Client) properties(contact usecase.Contact) map[string]any {
	props := map[string]string{
		"email":               contact.Email,
		"firstname":           contact.FirstName,
		"lastname":            contact.LastName,
		"phone":               FormatPhoneNumber(contact.Phone),
		"last_event_location": contact.EventLocation,
		"hubspot_owner_id":    c.ownerID,
	}
	if contact.EventTime != nil {
		props["last_event_date"] = contact.EventTime.UTC().Format("2006-01-02")
		props["last_event_time"] = contact.EventTime.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
	return map[string]any{"properties": props}
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any) (int, string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, "", errs.Wrap(err, "failed to encode hubspot request")
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(raw))
	if err != nil {
		return 0, "", errs.Wrap(err, "failed to build hubspot request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, "", errs.Wrap(err, "hubspot request failed")
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return resp.StatusCode, string(body), nil
}

// FormatPhoneNumber normalizes US numbers to "(XXX) XXX-XXXX"; anything it
// cannot recognize passes through unchanged.
func FormatPhoneNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()

	switch {
	case len(cleaned) == 10:
		return fmt.Sprintf("(%s) %s-%s", cleaned[0:3], cleaned[3:6], cleaned[6:])
	case len(cleaned) == 11 && strings.HasPrefix(cleaned, "1"):
		return fmt.Sprintf("(%s) %s-%s", cleaned[1:4], cleaned[4:7], cleaned[7:])
	default:
		return phone
	}
}
