package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calens/casewatch/internal/app"
)

func main() {
	os.Exit(run())
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: casewatch [flags] <accounts.yaml> <offline-token>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintln(os.Stderr, "  casewatch accounts.yaml your-offline-token")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func run() int {
	refreshMinutes := flag.Int("refresh", 0, "refresh interval in minutes (optional, defaults to 15)")
	prefsPath := flag.String("prefs", "", "override preferences file path (optional)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		AccountsPath: flag.Arg(0),
		OfflineToken: flag.Arg(1),
		PrefsPath:    *prefsPath,
	}
	if minutes := *refreshMinutes; minutes > 0 {
		opts.RefreshEvery = time.Duration(minutes) * time.Minute
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "casewatch: %v\n", err)
		return 1
	}
	return 0
}
