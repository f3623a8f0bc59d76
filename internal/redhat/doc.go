// Package redhat provides an HTTP client for the Red Hat customer
// portal support-case API.
//
// # Overview
//
// The package covers the two calls casewatch makes: the OAuth2
// refresh-token grant against sso.redhat.com, and the filtered case
// query against api.access.redhat.com. Both are plain request/response
// POSTs; there is no streaming, pagination, or mutation.
//
// # Token Lifecycle
//
// The client holds a long-lived offline token supplied by the user and
// exchanges it for short-lived access tokens on demand:
//
//	token, err := client.AccessToken(ctx)
//
// A successful exchange caches the access token together with an
// expiry instant. Subsequent calls inside the validity window return
// the cached token without touching the network; the first call after
// expiry performs exactly one new exchange.
//
// The validity window is the server-advertised expires_in minus a
// one-minute margin, floored at one minute, defaulting to five minutes
// when the server omits the field. The margin keeps a token from being
// presented moments before it lapses server-side.
//
// # Case Queries
//
// FetchCases issues one POST to /support/v1/cases/filter with a fixed
// status filter (Waiting on Customer, Waiting on Red Hat) and maps the
// response into []Case. Missing string fields become "", summaries are
// truncated to 100 runes, and an empty result set is an empty slice,
// never nil-with-error.
//
// # Error Handling
//
// Failures at the HTTP layer come back as wrapped transport errors.
// Non-2xx responses come back as typed errors carrying the response
// body, so the dashboard can show why the portal rejected a call:
//
//   - *AuthError: the token exchange was refused or returned no token
//   - *FetchError: the case query was refused
//
// Neither is retried here; the refresh loop's next pass is the only
// retry mechanism.
//
// # Concurrency
//
// Client is NOT safe for concurrent use. The token cache is mutated
// without locking because exactly one goroutine (the poller) owns the
// client. This mirrors the strictly sequential fetch pass: accounts
// are queried one at a time, and a hung request is bounded by the
// client's 15-second timeout plus context cancellation.
package redhat
