package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/browser"
)

func newNavigateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "navigate <url>",
		Short: "Navigate the tab to a URL via Page.navigate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				_, err := tab.Transport.Send(ctx, "Page.navigate", map[string]any{"url": url})
				if err != nil {
					return fmt.Errorf("navigate: %w", err)
				}
				fmt.Println(url)
				return nil
			})
		},
	}
}

func newBackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Navigate back in tab history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				_, err := tab.Page.GoBack()
				return err
			})
		},
	}
}

func newForwardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forward",
		Short: "Navigate forward in tab history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				_, err := tab.Page.GoForward()
				return err
			})
		},
	}
}

func newReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload the current page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				_, err := tab.Page.Reload()
				return err
			})
		},
	}
}
