package redhat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CaseFetcher defines the interface for fetching support cases.
// This interface is implemented by *Client and can be used for testing.
type CaseFetcher interface {
	FetchCases(ctx context.Context, accountNumber string) ([]Case, error)
}

// Ensure Client implements CaseFetcher at compile time.
var _ CaseFetcher = (*Client)(nil)

const (
	defaultTokenURL = "https://sso.redhat.com/auth/realms/redhat-external/protocol/openid-connect/token"
	defaultCasesURL = "https://api.access.redhat.com/support/v1/cases/filter"
	defaultClientID = "rhsm-api"

	defaultUserAgent = "casewatch/0.1"
	requestTimeout   = 15 * time.Second

	// tokenExpiryMargin is shaved off the advertised token lifetime so
	// a token is never presented moments before it lapses server-side.
	tokenExpiryMargin = time.Minute

	// tokenMinValidity floors the computed validity window. Without a
	// floor, a tiny advertised lifetime would force an exchange on
	// every single call.
	tokenMinValidity = time.Minute

	// tokenDefaultLifetime is assumed when the token endpoint omits
	// expires_in. SSO access tokens typically live five minutes.
	tokenDefaultLifetime = 5 * time.Minute
)

// AuthError reports a failed token exchange. Body carries the token
// endpoint's response so the failure cause (revoked token, bad client)
// is visible on the dashboard.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("token exchange failed (status %d): %s", e.Status, e.Body)
}

// FetchError reports a failed case query.
type FetchError struct {
	Status int
	Body   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("case query failed (status %d): %s", e.Status, e.Body)
}

// Client talks to the Red Hat customer portal API. It exchanges a
// long-lived offline token for short-lived access tokens and issues
// filtered case queries with them.
//
// The client caches one access token and its expiry. It is not safe
// for concurrent use: the single poller goroutine owns it.
type Client struct {
	offlineToken string
	tokenURL     string
	casesURL     string
	clientID     string
	userAgent    string
	http         *http.Client

	accessToken string
	tokenExpiry time.Time
	now         func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoints overrides the token and case endpoints. Used by tests
// to point the client at a local server.
func WithEndpoints(tokenURL, casesURL string) Option {
	return func(c *Client) {
		c.tokenURL = tokenURL
		c.casesURL = casesURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient builds a Client around the provided offline token.
func NewClient(offlineToken string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(offlineToken) == "" {
		return nil, fmt.Errorf("offline token is empty")
	}
	c := &Client{
		offlineToken: offlineToken,
		tokenURL:     defaultTokenURL,
		casesURL:     defaultCasesURL,
		clientID:     defaultClientID,
		userAgent:    defaultUserAgent,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// AccessToken returns the cached access token, exchanging the offline
// token for a fresh one when the cache is empty or expired.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if c.accessToken != "" && c.now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", c.offlineToken)
	form.Set("client_id", c.clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute token request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &AuthError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload tokenResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", &AuthError{Status: resp.StatusCode, Body: "no access_token in response"}
	}

	c.accessToken = payload.AccessToken
	c.tokenExpiry = c.now().Add(tokenValidity(payload.ExpiresIn))
	return c.accessToken, nil
}

// tokenValidity converts the advertised expires_in into the window the
// cache trusts: margin shaved off, floored, defaulted when absent.
func tokenValidity(expiresIn int) time.Duration {
	lifetime := tokenDefaultLifetime
	if expiresIn > 0 {
		lifetime = time.Duration(expiresIn) * time.Second
	}
	lifetime -= tokenExpiryMargin
	if lifetime < tokenMinValidity {
		lifetime = tokenMinValidity
	}
	return lifetime
}

// FetchCases retrieves the waiting cases for one account. The query is
// fixed to cases in a waiting state; a clean response with no matches
// yields an empty slice.
func (c *Client) FetchCases(ctx context.Context, accountNumber string) ([]Case, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	filter := caseFilterRequest{
		AccountNumber: accountNumber,
		Statuses:      []string{StatusWaitingOnCustomer, StatusWaitingOnRedHat},
	}
	encoded, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("encode case filter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.casesURL, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("create case request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute case request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read case response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload caseFilterResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode case response: %w", err)
	}

	cases := make([]Case, 0, len(payload.Cases))
	for _, record := range payload.Cases {
		cases = append(cases, record.toCase())
	}
	return cases, nil
}
