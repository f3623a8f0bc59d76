// Package app provides the orchestration layer for casewatch.
//
// # Overview
//
// This package wires together configuration, the portal client, state
// management, and the UI. It is the composition root: everything is
// initialized here and connected with sensible defaults.
//
// # Startup Sequence
//
//  1. Load the accounts document (fatal on any problem)
//  2. Open the file-backed diagnostic logger
//  3. Build the Red Hat portal client around the offline token
//  4. Seed the shared state.Store with the configured accounts
//  5. Run one synchronous fetch pass so the first frame has data
//  6. Launch the background poller goroutine
//  7. Start the TUI and block until the user quits or ctx cancels
//
// # The Refresh Loop
//
// The Poller owns the only goroutine that talks to the network. Each
// pass walks the configured accounts strictly in order, fetching one
// at a time; total pass latency therefore scales linearly with account
// count, bounded per request by the client's HTTP timeout. Failures
// are per-account and non-fatal:
//
//   - the failing account's case list is emptied (fail visible)
//   - the error is recorded in the store's single error slot
//   - the pass continues with the next account
//
// There is no backoff and no retry count. The next scheduled pass —
// or a manual kick from the UI — is the only retry mechanism.
//
// # Error Handling
//
// Fatal errors (returned from Run before the display starts):
//   - accounts file missing, unreadable, or malformed
//   - empty offline token
//
// Recoverable errors (displayed on the dashboard, logged to file):
//   - token exchange failures
//   - per-account case query failures
//   - network timeouts during a pass
package app
