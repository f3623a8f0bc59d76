package app

import (
	"context"
	"fmt"
	"time"

	"github.com/phuslu/log"

	"github.com/calens/casewatch/internal/config"
	"github.com/calens/casewatch/internal/redhat"
	"github.com/calens/casewatch/internal/state"
)

// Poller drives the refresh cadence: one full sequential fetch pass
// over every configured account at a fixed interval, plus on-demand
// passes kicked from the UI.
type Poller struct {
	store    *state.Store
	fetcher  redhat.CaseFetcher
	accounts []config.Account
	interval time.Duration
	logger   log.Logger
	kick     chan struct{}
}

// NewPoller builds a Poller. It does not start anything.
func NewPoller(store *state.Store, fetcher redhat.CaseFetcher, accounts []config.Account, interval time.Duration, logger log.Logger) *Poller {
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}
	return &Poller{
		store:    store,
		fetcher:  fetcher,
		accounts: accounts,
		interval: interval,
		logger:   logger,
		kick:     make(chan struct{}, 1),
	}
}

// Start launches the background refresh goroutine. It returns
// immediately; the goroutine exits when ctx is cancelled. The first
// pass runs a full interval after Start, since the caller runs the
// initial pass synchronously.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			case <-p.kick:
				ticker.Reset(p.interval)
			}
			p.runPass(ctx)
		}
	}()
}

// Kick requests an immediate refresh pass. Non-blocking; a kick while
// a kick is already pending is a no-op.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// runPass fetches every account's cases in order. A failing account is
// emptied and its error recorded; accounts already fetched in the same
// pass keep their results. There is no retry or backoff — the next
// scheduled pass is the retry.
func (p *Poller) runPass(ctx context.Context) {
	p.store.BeginPass()
	defer p.store.FinishPass()

	for _, acc := range p.accounts {
		if ctx.Err() != nil {
			return
		}
		cases, err := p.fetcher.FetchCases(ctx, acc.ID)
		if err != nil {
			p.store.SetFailure(acc.ID, fmt.Sprintf("fetch %s: %v", displayName(acc), err))
			p.logger.Error().
				Str("account", acc.ID).
				Err(err).
				Msg("case fetch failed")
			continue
		}
		p.store.SetCases(acc.ID, cases)
		p.logger.Info().
			Str("account", acc.ID).
			Int("cases", len(cases)).
			Msg("case fetch complete")
	}
}

func displayName(acc config.Account) string {
	if acc.Name != "" {
		return acc.Name
	}
	return acc.ID
}
