package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/browser"
	"github.com/polzovatel/browsercli/internal/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	var opts snapshotFlags
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a textual outline of the page (AX, fiber, full, or mini DOM)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				out, err := snapshot.TakeSnapshot(ctx, tab.Transport, opts.toOptions())
				if err != nil {
					return fmt.Errorf("snapshot: %w", err)
				}
				fmt.Println(out)
				return nil
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

// snapshotFlags mirrors snapshot.Options as CLI flags, per §3's
// recognized-options enumeration.
type snapshotFlags struct {
	interactive bool
	compact     bool
	react       bool
	full        bool
	mini        bool
	maxDepth    int
	hasMaxDepth bool
	filter      string
}

func (f *snapshotFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "include only interactive-class nodes")
	cmd.Flags().BoolVar(&f.compact, "compact", false, "elide semantically empty structural nodes")
	cmd.Flags().BoolVar(&f.react, "react", false, "use the React fiber source instead of the AX tree")
	cmd.Flags().BoolVar(&f.full, "full", false, "use the raw DOM source")
	cmd.Flags().BoolVar(&f.mini, "mini", false, "use the collapsed DOM source")
	cmd.Flags().StringVar(&f.filter, "filter", "", "substring or glob (if it contains '*') pattern for node names")
	cmd.Flags().Func("max-depth", "cap rendered tree depth", func(v string) error {
		var d int
		if _, err := fmt.Sscanf(v, "%d", &d); err != nil {
			return fmt.Errorf("invalid --max-depth %q: %w", v, err)
		}
		f.maxDepth = d
		f.hasMaxDepth = true
		return nil
	})
}

func (f snapshotFlags) toOptions() snapshot.Options {
	o := snapshot.Options{
		Interactive: f.interactive,
		Compact:     f.compact,
		React:       f.react,
		Full:        f.full,
		Mini:        f.mini,
		Filter:      f.filter,
	}
	if f.hasMaxDepth {
		depth := f.maxDepth
		o.MaxDepth = &depth
	}
	return o
}
