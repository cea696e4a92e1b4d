package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"badgeview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override badge config path (optional)")
	dataDir := flag.String("data-dir", "", "override snapshot data directory (optional)")
	syncSeconds := flag.Int("sync", 0, "sync interval in seconds (optional, defaults to 30m)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, DataDir: *dataDir}
	if secs := *syncSeconds; secs > 0 {
		opts.SyncEvery = secs
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "badgeview: %v\n", err)
		return 1
	}
	return 0
}
