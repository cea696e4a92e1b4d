package app

import (
	"context"
	"fmt"
	"time"

	"badgeview/internal/config"
	"badgeview/internal/feed"
	"badgeview/internal/snapshot"
	"badgeview/internal/syncer"
	"badgeview/internal/ui"
)

// Options configure the badgeview application.
type Options struct {
	ConfigPath string
	DataDir    string // overrides the configured data dir when set
	SyncEvery  int    // seconds; zero uses the configured interval
}

// Run boots the badge until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	if opts.SyncEvery > 0 {
		cfg.SyncInterval = time.Duration(opts.SyncEvery) * time.Second
	}

	// Persisted snapshots are reloaded before any navigation happens,
	// so the first page drawn already shows cached data when offline.
	store, err := snapshot.Open(cfg.DataDir, cfg.Username)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}

	client, err := feed.NewClient(feed.Options{
		BaseURL:    cfg.HostingRoot(),
		Username:   cfg.Username,
		Timeout:    cfg.RequestTimeout,
		Retries:    cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if err != nil {
		return fmt.Errorf("init feed client: %w", err)
	}

	state := &syncer.State{}
	return ui.Run(ui.Options{
		Context:    ctx,
		Fetcher:    client,
		Store:      store,
		Scheduler:  syncer.NewScheduler(cfg.SyncInterval, cfg.FailureThreshold, cfg.BackoffFactor, cfg.MaxBackoffMultiple),
		State:      state,
		Reconciler: &syncer.Reconciler{Store: store, State: state},
	})
}
