package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/browser"
)

func newScreenshotCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "screenshot",
		Short: "Capture a PNG screenshot via Page.captureScreenshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				raw, err := tab.Transport.Send(ctx, "Page.captureScreenshot", map[string]any{"format": "png"})
				if err != nil {
					return fmt.Errorf("screenshot: %w", err)
				}
				var result struct {
					Data string `json:"data"`
				}
				if err := json.Unmarshal(raw, &result); err != nil {
					return fmt.Errorf("screenshot: decode response: %w", err)
				}
				bytes, err := base64.StdEncoding.DecodeString(result.Data)
				if err != nil {
					return fmt.Errorf("screenshot: decode: %w", err)
				}
				if err := os.WriteFile(outPath, bytes, 0o644); err != nil {
					return fmt.Errorf("screenshot: write %s: %w", outPath, err)
				}
				fmt.Println(outPath)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "screenshot.png", "output file path")
	return cmd
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a JavaScript expression in the page and print its JSON value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				raw, err := tab.Transport.Eval(ctx, expr)
				if err != nil {
					return fmt.Errorf("eval: %w", err)
				}
				fmt.Println(string(raw))
				return nil
			})
		},
	}
}
