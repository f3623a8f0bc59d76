package redhat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// newTestClient builds a client pointed at a local token/case server.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient("offline-token", WithEndpoints(server.URL+"/token", server.URL+"/cases"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c, server
}

func writeToken(w http.ResponseWriter, token string, expiresIn int) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": token,
		"expires_in":   expiresIn,
	})
}

func TestNewClient_RejectsEmptyToken(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatal("NewClient accepted a blank offline token")
	}
}

func TestAccessToken_ExchangesAndCaches(t *testing.T) {
	t.Parallel()

	var exchanges int
	var gotForm string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			http.NotFound(w, r)
			return
		}
		exchanges++
		body, _ := io.ReadAll(r.Body)
		gotForm = string(body)
		writeToken(w, "access-1", 900)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	token, err := c.AccessToken(ctx)
	if err != nil {
		t.Fatalf("AccessToken returned error: %v", err)
	}
	if token != "access-1" {
		t.Fatalf("token = %q, want access-1", token)
	}
	for _, want := range []string{"grant_type=refresh_token", "refresh_token=offline-token", "client_id=rhsm-api"} {
		if !strings.Contains(gotForm, want) {
			t.Fatalf("form body %q missing %q", gotForm, want)
		}
	}

	// Second call inside the validity window must reuse the cache.
	again, err := c.AccessToken(ctx)
	if err != nil {
		t.Fatalf("AccessToken (cached) returned error: %v", err)
	}
	if again != token {
		t.Fatalf("cached token = %q, want %q", again, token)
	}
	if exchanges != 1 {
		t.Fatalf("exchanges = %d, want 1", exchanges)
	}
}

func TestAccessToken_ReExchangesAfterExpiry(t *testing.T) {
	t.Parallel()

	var exchanges int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++
		writeToken(w, "access-"+strings.Repeat("x", exchanges), 900)
	}))

	clock := time.Now()
	c.now = func() time.Time { return clock }

	ctx := context.Background()
	first, err := c.AccessToken(ctx)
	if err != nil {
		t.Fatalf("AccessToken returned error: %v", err)
	}

	// Advance past the 900s lifetime (minus margin).
	clock = clock.Add(20 * time.Minute)

	second, err := c.AccessToken(ctx)
	if err != nil {
		t.Fatalf("AccessToken after expiry returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected a fresh token after expiry, got %q twice", first)
	}
	if exchanges != 2 {
		t.Fatalf("exchanges = %d, want 2", exchanges)
	}
}

func TestAccessToken_ErrorCarriesResponseBody(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))

	_, err := c.AccessToken(context.Background())
	authErr, ok := err.(*AuthError)
	if !ok {
		t.Fatalf("error type = %T, want *AuthError (%v)", err, err)
	}
	if authErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", authErr.Status)
	}
	if !strings.Contains(authErr.Body, "invalid_grant") {
		t.Fatalf("body = %q, want invalid_grant", authErr.Body)
	}
}

func TestAccessToken_MissingTokenIsAuthError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"expires_in": 900}`))
	}))

	_, err := c.AccessToken(context.Background())
	if _, ok := err.(*AuthError); !ok {
		t.Fatalf("error type = %T, want *AuthError (%v)", err, err)
	}
}

func TestFetchCases_SendsFilterAndMapsRecords(t *testing.T) {
	t.Parallel()

	var gotFilter caseFilterRequest
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			writeToken(w, "access-1", 900)
		case "/cases":
			gotAuth = r.Header.Get("Authorization")
			if err := json.NewDecoder(r.Body).Decode(&gotFilter); err != nil {
				t.Errorf("decode filter: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"cases": [
				{"caseNumber": "04001234", "summary": "Pods crash-looping", "severity": "Urgent", "status": "Waiting on Red Hat", "product": "OpenShift", "lastModifiedDate": "2026-08-29T10:00:00Z"},
				{"caseNumber": "04005678"}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))

	cases, err := c.FetchCases(context.Background(), "111")
	if err != nil {
		t.Fatalf("FetchCases returned error: %v", err)
	}

	if gotAuth != "Bearer access-1" {
		t.Fatalf("Authorization = %q, want Bearer access-1", gotAuth)
	}
	if gotFilter.AccountNumber != "111" {
		t.Fatalf("accountNumber = %q, want 111", gotFilter.AccountNumber)
	}
	wantStatuses := []string{StatusWaitingOnCustomer, StatusWaitingOnRedHat}
	if len(gotFilter.Statuses) != 2 || gotFilter.Statuses[0] != wantStatuses[0] || gotFilter.Statuses[1] != wantStatuses[1] {
		t.Fatalf("statuses = %v, want %v", gotFilter.Statuses, wantStatuses)
	}

	if len(cases) != 2 {
		t.Fatalf("len(cases) = %d, want 2", len(cases))
	}
	first := cases[0]
	if first.Number != "04001234" || first.Severity != "Urgent" || !first.WaitingOnRedHat() {
		t.Fatalf("first case mapped wrong: %#v", first)
	}
	// Record with only a case number: everything else defaults to "".
	second := cases[1]
	if second.Number != "04005678" || second.Summary != "" || second.Product != "" || second.LastModified != "" {
		t.Fatalf("sparse case mapped wrong: %#v", second)
	}
}

func TestFetchCases_TruncatesLongSummaries(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 250)
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			writeToken(w, "access-1", 900)
		case "/cases":
			_ = json.NewEncoder(w).Encode(caseFilterResponse{
				Cases: []caseRecord{{CaseNumber: "1", Summary: long}},
			})
		}
	}))

	cases, err := c.FetchCases(context.Background(), "111")
	if err != nil {
		t.Fatalf("FetchCases returned error: %v", err)
	}
	if got := len(cases[0].Summary); got != 100 {
		t.Fatalf("summary length = %d, want 100", got)
	}
}

func TestFetchCases_EmptyResultIsEmptySlice(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			writeToken(w, "access-1", 900)
		case "/cases":
			_, _ = w.Write([]byte(`{}`))
		}
	}))

	cases, err := c.FetchCases(context.Background(), "222")
	if err != nil {
		t.Fatalf("FetchCases returned error: %v", err)
	}
	if cases == nil || len(cases) != 0 {
		t.Fatalf("cases = %#v, want empty non-nil slice", cases)
	}
}

func TestFetchCases_ErrorCarriesResponseBody(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			writeToken(w, "access-1", 900)
		case "/cases":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("account not visible"))
		}
	}))

	_, err := c.FetchCases(context.Background(), "111")
	fetchErr, ok := err.(*FetchError)
	if !ok {
		t.Fatalf("error type = %T, want *FetchError (%v)", err, err)
	}
	if fetchErr.Status != http.StatusForbidden || !strings.Contains(fetchErr.Body, "account not visible") {
		t.Fatalf("fetch error = %#v", fetchErr)
	}
}

func TestTokenValidity(t *testing.T) {
	tests := []struct {
		name      string
		expiresIn int
		want      time.Duration
	}{
		{"advertised lifetime minus margin", 900, 14 * time.Minute},
		{"absent defaults to five minutes", 0, 4 * time.Minute},
		{"tiny lifetime floors at a minute", 10, time.Minute},
		{"negative treated as absent", -5, 4 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokenValidity(tt.expiresIn); got != tt.want {
				t.Fatalf("tokenValidity(%d) = %v, want %v", tt.expiresIn, got, tt.want)
			}
		})
	}
}
