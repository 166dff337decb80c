package gcal

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/openairphotobooth/booking-api/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const calendarScope = "https://www.googleapis.com/auth/calendar"

// tokenSource exchanges a service-account JWT assertion for an OAuth2 access
// token (the jwt-bearer grant) and caches it until shortly before expiry.
type tokenSource struct {
	hc          *http.Client
	tokenURL    string
	clientEmail string
	key         *rsa.PrivateKey

	mu      sync.Mutex
	token   string
	expires time.Time
}

func newTokenSource(hc *http.Client, tokenURL, clientEmail, privateKeyPEM string) (*tokenSource, error) {
	// Keys arriving via environment variables carry literal "\n" sequences.
	pem := strings.ReplaceAll(privateKeyPEM, `\n`, "\n")

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pem))
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse service account private key")
	}

	return &tokenSource{
		hc:          hc,
		tokenURL:    tokenURL,
		clientEmail: clientEmail,
		key:         key,
	}, nil
}

func (ts *tokenSource) AccessToken(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Now().Before(ts.expires) {
		return ts.token, nil
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   ts.clientEmail,
		"scope": calendarScope,
		"aud":   ts.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.key)
	if err != nil {
		return "", errs.Wrap(err, "failed to sign token assertion")
	}

	form := url.Values{
		"grant_type": {"urn:ietf:params:oauth:grant-type:jwt-bearer"},
		"assertion":  {assertion},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.hc.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "token exchange failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", errs.New("token exchange rejected: " + resp.Status)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errs.Wrap(err, "failed to decode token response")
	}
	if body.AccessToken == "" {
		return "", errs.New("token response missing access_token")
	}

	ts.token = body.AccessToken
	// Refresh a minute early to avoid using a token at the edge of expiry.
	ts.expires = now.Add(time.Duration(body.ExpiresIn)*time.Second - time.Minute)

	return ts.token, nil
}
