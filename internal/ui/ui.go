package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"badgeview/internal/feed"
	"badgeview/internal/snapshot"
	"badgeview/internal/syncer"
)

// Options configure the UI runtime.
type Options struct {
	Context    context.Context
	Fetcher    feed.Fetcher
	Store      *snapshot.Store
	Scheduler  syncer.Scheduler
	State      *syncer.State
	Reconciler *syncer.Reconciler
}

// Run drives the badge UI until the context is cancelled or the user
// quits.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a snapshot store")
	}
	if opts.Fetcher == nil {
		return fmt.Errorf("ui requires a fetch client")
	}
	if opts.State == nil || opts.Reconciler == nil {
		return fmt.Errorf("ui requires sync state and reconciler")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
