package state

import (
	"sync"
	"time"

	"github.com/calens/casewatch/internal/redhat"
)

// Account pairs a configured account with its current cases. The id
// and name never change after startup; the case list is replaced
// wholesale by every refresh pass.
type Account struct {
	ID    string
	Name  string
	Cases []redhat.Case
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Accounts    []Account
	LastUpdated time.Time // end of the most recent completed pass
	LastError   string    // most recent failure in the current/last pass
	Refreshing  bool      // a fetch pass is in flight
}

// TotalCases sums case counts across all accounts.
func (s Snapshot) TotalCases() int {
	total := 0
	for _, acc := range s.Accounts {
		total += len(acc.Cases)
	}
	return total
}

// WaitingOnRedHat counts cases across all accounts where the ball is
// in Red Hat's court. The remainder (total minus this) is waiting on
// the customer, by construction of the fetch filter.
func (s Snapshot) WaitingOnRedHat() int {
	count := 0
	for _, acc := range s.Accounts {
		for _, c := range acc.Cases {
			if c.WaitingOnRedHat() {
				count++
			}
		}
	}
	return count
}

// Store coordinates concurrent updates to the snapshot. The poller is
// the single writer; the UI reads snapshots on its own tick.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetAccounts seeds the store with the configured accounts, in order,
// with no cases attached. Called once before the first pass.
func (s *Store) SetAccounts(accounts []Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Accounts = cloneAccounts(accounts)
}

// BeginPass marks the start of a fetch pass. The error slot is
// cleared so only failures from the new pass are ever displayed.
func (s *Store) BeginPass() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Refreshing = true
	s.snapshot.LastError = ""
}

// SetCases replaces one account's case list after a successful fetch.
// Unknown ids are ignored.
func (s *Store) SetCases(accountID string, cases []redhat.Case) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot.Accounts {
		if s.snapshot.Accounts[i].ID == accountID {
			s.snapshot.Accounts[i].Cases = cloneCases(cases)
			return
		}
	}
}

// SetFailure records a failed fetch for one account. The account's
// cases are emptied rather than left stale — a failing account must
// look failed, not frozen. Within a pass the last failure wins.
func (s *Store) SetFailure(accountID string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = message
	for i := range s.snapshot.Accounts {
		if s.snapshot.Accounts[i].ID == accountID {
			s.snapshot.Accounts[i].Cases = nil
			return
		}
	}
}

// FinishPass marks the end of a fetch pass and stamps the update
// time, whether or not every account succeeded.
func (s *Store) FinishPass() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Refreshing = false
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot, independent of
// later store mutations.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Accounts = cloneAccounts(s.snapshot.Accounts)
	return snap
}

func cloneAccounts(accounts []Account) []Account {
	if len(accounts) == 0 {
		return nil
	}
	dup := make([]Account, len(accounts))
	copy(dup, accounts)
	for i := range dup {
		dup[i].Cases = cloneCases(dup[i].Cases)
	}
	return dup
}

func cloneCases(cases []redhat.Case) []redhat.Case {
	if len(cases) == 0 {
		return nil
	}
	dup := make([]redhat.Case, len(cases))
	copy(dup, cases)
	return dup
}
