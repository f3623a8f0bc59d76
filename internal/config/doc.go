// Package config handles loading and parsing the accounts document.
//
// # Overview
//
// casewatch is pointed at a YAML file listing the support accounts to
// monitor. The file is read once at startup and is immutable for the
// life of the process; the only mutable state derived from it (the
// cases attached to each account) lives in the state package.
//
// # File Format
//
// Example accounts.yaml:
//
//	accounts:
//	  - id: "111"
//	    name: Acme
//	  - id: "222"
//	    name: Globex
//
// Missing id or name fields default to empty strings and render as
// such; they are not an error. An empty or absent accounts list IS an
// error — a dashboard over nothing is a misconfiguration.
//
// # Error Handling
//
// Unlike the prefs package, which degrades gracefully, every failure
// here is fatal: a missing file, an unreadable file, or malformed
// YAML aborts startup before the display is entered. The process
// prints the wrapped error and exits non-zero.
//
// # Path Expansion
//
// Tilde paths are expanded against the user's home directory and
// relative paths are made absolute, matching how every other
// user-supplied path in casewatch is treated.
package config
