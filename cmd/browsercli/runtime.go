package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/browser"
)

// withTab launches a browser, opens one tab (optionally restoring storage
// state from the --storage flag), runs fn, saves storage state if
// --save-state was given, and tears everything down — the per-invocation
// lifecycle every subcommand in this package shares.
func withTab(cmd *cobra.Command, fn func(ctx context.Context, tab *browser.Tab) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, _ := cmd.Flags().GetString("storage")
	saveState, _ := cmd.Flags().GetString("save-state")

	launcher, err := browser.NewLauncher(state.log)
	if err != nil {
		return err
	}
	defer launcher.Close()

	tab, err := launcher.NewTab(ctx, storage)
	if err != nil {
		return err
	}
	defer tab.Close()

	if err := fn(ctx, tab); err != nil {
		return err
	}

	if saveState != "" {
		if err := tab.SaveState(saveState); err != nil {
			return err
		}
	}
	return nil
}
