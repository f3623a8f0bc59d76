package app

import (
	"context"
	"fmt"
	"time"

	"github.com/calens/casewatch/internal/config"
	"github.com/calens/casewatch/internal/logging"
	"github.com/calens/casewatch/internal/prefs"
	"github.com/calens/casewatch/internal/redhat"
	"github.com/calens/casewatch/internal/state"
	"github.com/calens/casewatch/internal/ui"
)

// Options configure the casewatch application.
type Options struct {
	AccountsPath string        // required: accounts YAML
	OfflineToken string        // required: long-lived SSO refresh credential
	RefreshEvery time.Duration // zero uses the default (15m)
	PrefsPath    string        // empty uses default ~/.config/casewatch/prefs.toml
	LogPath      string        // empty uses default state-dir location
}

// Run boots the casewatch TUI until the context is cancelled or the
// user quits. Configuration problems are fatal and returned before the
// display is entered; fetch failures after that point are per-account
// and visible on the dashboard instead.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.AccountsPath)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	cfg.ClampRefresh(opts.RefreshEvery)

	logger := logging.Open(opts.LogPath)
	logger.Info().
		Int("accounts", len(cfg.Accounts)).
		Dur("refresh_every", cfg.RefreshEvery).
		Msg("casewatch starting")

	client, err := redhat.NewClient(opts.OfflineToken)
	if err != nil {
		return fmt.Errorf("init portal client: %w", err)
	}

	store := &state.Store{}
	seedAccounts(store, cfg.Accounts)

	userPrefs := prefs.Load(opts.PrefsPath)

	poller := NewPoller(store, client, cfg.Accounts, cfg.RefreshEvery, logger)

	// One synchronous pass before the display so the first frame shows
	// data (or the failure) instead of empty tables.
	poller.runPass(ctx)
	poller.Start(ctx)

	uiOpts := ui.Options{
		Context:      ctx,
		Store:        store,
		Refresher:    poller,
		RefreshEvery: cfg.RefreshEvery,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// seedAccounts loads the configured accounts into the store, in file
// order, with no cases attached yet.
func seedAccounts(store *state.Store, accounts []config.Account) {
	seeded := make([]state.Account, 0, len(accounts))
	for _, acc := range accounts {
		seeded = append(seeded, state.Account{ID: acc.ID, Name: acc.Name})
	}
	store.SetAccounts(seeded)
}
