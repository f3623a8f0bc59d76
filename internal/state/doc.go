// Package state provides thread-safe state management for casewatch.
//
// # Overview
//
// The Store is the coordination point between the background poller
// (single writer) and the UI (reader on its own tick). It holds the
// configured accounts with their current cases, the timestamp of the
// last completed pass, and the single most-recent error slot.
//
// # Pass Semantics
//
// A refresh pass brackets its per-account updates:
//
//	store.BeginPass()                 // Refreshing=true, error cleared
//	store.SetCases("111", cases)      // success: wholesale replace
//	store.SetFailure("222", message)  // failure: cases emptied, error set
//	store.FinishPass()                // Refreshing=false, time stamped
//
// Two properties matter and are tested:
//
//   - Fail visible: a failed account's cases are emptied, never left
//     stale. This is deliberately NOT a cache — an account that cannot
//     be fetched must look that way on the dashboard.
//   - Isolation: accounts fetched earlier in the same pass keep their
//     results when a later account fails. Only the error slot is
//     shared, and the last failure in a pass wins.
//
// # Concurrency
//
// A sync.RWMutex guards the snapshot. Snapshot() returns a deep copy
// so the UI can render without holding the lock and without seeing
// later mutations. The lock is held only for copying, never across
// network I/O.
package state
