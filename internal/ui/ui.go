package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calens/casewatch/internal/state"
)

// Refresher triggers an immediate fetch pass. Implemented by the app
// poller; declared here so ui does not import app.
type Refresher interface {
	Kick()
}

// Options configure the UI runtime.
type Options struct {
	Context      context.Context
	Store        *state.Store
	Refresher    Refresher
	RefreshEvery time.Duration
	ThemeName    string
	PrefsPath    string
}

// Run starts the bubbletea program and blocks until the user quits or
// the context is cancelled. bubbletea owns the terminal for the whole
// run: raw mode and the alt screen are restored on every exit path,
// including panics and context cancellation.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		// Cancellation (SIGINT/SIGTERM) is a clean shutdown, not an error.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
