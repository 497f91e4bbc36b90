package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/browser"
)

func newTabsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "List, open, close, or switch to browser targets via Target.*",
	}
	cmd.AddCommand(newTabsListCmd(), newTabsNewCmd(), newTabsCloseCmd(), newTabsSwitchCmd())
	return cmd
}

func newTabsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "list",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				raw, err := tab.Transport.Send(ctx, "Target.getTargets", map[string]any{})
				if err != nil {
					return fmt.Errorf("tabs list: %w", err)
				}
				var result struct {
					TargetInfos []struct {
						TargetID string `json:"targetId"`
						Type     string `json:"type"`
						Title    string `json:"title"`
						URL      string `json:"url"`
					} `json:"targetInfos"`
				}
				if err := json.Unmarshal(raw, &result); err != nil {
					return fmt.Errorf("tabs list: decode: %w", err)
				}
				for _, t := range result.TargetInfos {
					if t.Type != "page" {
						continue
					}
					fmt.Printf("%s\t%s\t%s\n", t.TargetID, t.Title, t.URL)
				}
				return nil
			})
		},
	}
}

func newTabsNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "new <url>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				raw, err := tab.Transport.Send(ctx, "Target.createTarget", map[string]any{"url": url})
				if err != nil {
					return fmt.Errorf("tabs new: %w", err)
				}
				var result struct {
					TargetID string `json:"targetId"`
				}
				if err := json.Unmarshal(raw, &result); err != nil {
					return fmt.Errorf("tabs new: decode: %w", err)
				}
				fmt.Println(result.TargetID)
				return nil
			})
		},
	}
}

func newTabsCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "close <targetId>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetID := args[0]
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				_, err := tab.Transport.Send(ctx, "Target.closeTarget", map[string]any{"targetId": targetID})
				if err != nil {
					return fmt.Errorf("tabs close: %w", err)
				}
				return nil
			})
		},
	}
}

func newTabsSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "switch <targetId>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetID := args[0]
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				_, err := tab.Transport.Send(ctx, "Target.activateTarget", map[string]any{"targetId": targetID})
				if err != nil {
					return fmt.Errorf("tabs switch: %w", err)
				}
				return nil
			})
		},
	}
}
