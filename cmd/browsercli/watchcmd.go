package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/browser"
	"github.com/polzovatel/browsercli/internal/snapshot"
	"github.com/polzovatel/browsercli/internal/store"
)

// newWatchCmd polls the snapshot engine on an interval and prints the
// rendered snapshot only when its content digest changes from the last
// one printed in this run and, with history recording on, from the last
// one recorded in history. This is a CLI-only addition layered on top of
// the snapshot engine's single take_snapshot call; it does not subscribe
// to DOM mutations (excluded by §1's non-goals) — it re-runs the same
// synchronous snapshot operation on a timer and diffs the result.
func newWatchCmd() *cobra.Command {
	var opts snapshotFlags
	var intervalSec int
	var noHistory bool
	var url string

	cmd := &cobra.Command{
		Use:   "watch <url>",
		Short: "Poll a page's snapshot on an interval, printing only when it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url = args[0]
			recordHistory := state.cfg.HistoryEnabled && !noHistory

			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				var history *store.History
				if recordHistory {
					h, err := store.Open(state.cfg.HistoryDBPath)
					if err != nil {
						return err
					}
					defer h.Close()
					history = h
				}

				if _, err := tab.Transport.Send(ctx, "Page.navigate", map[string]any{"url": url}); err != nil {
					return fmt.Errorf("watch: navigate: %w", err)
				}

				mode := modeLabel(opts.toOptions())
				ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
				defer ticker.Stop()

				var lastPrinted string
				for {
					if err := pollOnce(ctx, tab, history, url, mode, opts, recordHistory, &lastPrinted); err != nil {
						return err
					}
					select {
					case <-ctx.Done():
						return nil
					case <-ticker.C:
					}
				}
			})
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVar(&intervalSec, "interval", 5, "seconds between polls")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "don't record snapshots to the history store")
	return cmd
}

func pollOnce(ctx context.Context, tab *browser.Tab, history *store.History, url, mode string, opts snapshotFlags, recordHistory bool, lastPrinted *string) error {
	rendered, digest, changed, err := TakeSnapshotWithMeta(ctx, tab.Transport, opts.toOptions(), history, url, mode, recordHistory)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if !changed || digest == *lastPrinted {
		return nil
	}
	*lastPrinted = digest
	fmt.Printf("--- %s (%s)\n%s\n", time.Now().UTC().Format(time.RFC3339), digest, rendered)
	return nil
}

func modeLabel(o snapshot.Options) string {
	switch o.ResolveMode() {
	case snapshot.ModeMini:
		return "mini"
	case snapshot.ModeFull:
		return "full"
	case snapshot.ModeReact:
		return "react"
	default:
		return "ax"
	}
}
