// Package ui implements the casewatch terminal dashboard.
//
// # Overview
//
// The UI is a bubbletea program. Rendering is a pure function of the
// model: a state snapshot, the wall-clock time of the latest display
// tick, the terminal size, and the active theme. The frame is, top to
// bottom: a header bar (logo, last-update time, countdown, refresh
// spinner, current error), a summary bar (total / waiting-on-Red-Hat /
// waiting-on-customer counts), one bordered table per account, and a
// footer with key hints.
//
// # Display Cadence
//
// A 500ms tick re-reads the store snapshot and re-renders, entirely
// decoupled from the fetch cadence. The countdown and relative
// timestamps stay live between passes; new data appears on the tick
// after the poller stores it.
//
// # Keys
//
//	q / Q / ctrl+c   quit
//	r                force an immediate refresh pass
//	t                cycle theme (persisted to prefs)
//
// # Rendering Guarantees
//
// Empty or missing case fields render as empty strings, never panic.
// An account with zero cases renders a single placeholder row. Case
// numbers are wrapped in OSC 8 hyperlinks to the customer portal;
// terminals without hyperlink support show the plain number.
//
// # Terminal Handling
//
// bubbletea puts the terminal in raw mode on the alt screen and
// restores it on every exit path — quit key, context cancellation
// (signals), and panics. No terminal state management lives in this
// package.
package ui
