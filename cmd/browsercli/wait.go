package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/browser"
)

func newWaitCmd() *cobra.Command {
	var timeoutSec int
	cmd := &cobra.Command{
		Use:   "wait <selector>",
		Short: "Poll until a selector matches an element, or time out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := args[0]
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				deadline := time.Now().Add(time.Duration(timeoutSec) * time.Second)
				expr := fmt.Sprintf(`document.querySelector(%s) !== null`, jsString(selector))
				for {
					raw, err := tab.Transport.Eval(ctx, expr)
					if err != nil {
						return err
					}
					var found bool
					if err := json.Unmarshal(raw, &found); err == nil && found {
						return nil
					}
					if time.Now().After(deadline) {
						return fmt.Errorf("wait: timed out after %ds waiting for %s", timeoutSec, selector)
					}
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(200 * time.Millisecond):
					}
				}
			})
		},
	}
	cmd.Flags().IntVar(&timeoutSec, "timeout", 10, "seconds to wait before giving up")
	return cmd
}
