// Command browsercli drives a Chromium instance over the Chrome DevTools
// Protocol: navigation, clicks, key input, screenshots, raw CDP eval, and
// the page snapshot engine (internal/snapshot). Every subcommand launches
// its own Chromium process, performs one action, and exits — this CLI
// surface is thin mechanical glue over CDP and is not this module's core;
// the core is internal/snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/config"
	"github.com/polzovatel/browsercli/internal/logging"
)

// rootState carries the loaded config and logger. PersistentPreRunE fills
// the package-level state variable, which every subcommand reads.
type rootState struct {
	cfg config.Config
	log zerolog.Logger
}

var state rootState

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "browsercli:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:   "browsercli",
		Short: "Command-line driver for a Chrome DevTools Protocol browser",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			state = rootState{cfg: cfg, log: logging.NewConsole(level)}
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to browsercli.toml (default: ./browsercli.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("storage", "", "path to a saved storage state to restore")
	root.PersistentFlags().String("save-state", "", "path to save storage state after the command completes")

	root.AddCommand(
		newNavigateCmd(),
		newBackCmd(),
		newForwardCmd(),
		newReloadCmd(),
		newClickCmd(),
		newTypeCmd(),
		newFillCmd(),
		newPressCmd(),
		newScreenshotCmd(),
		newEvalCmd(),
		newGetCmd(),
		newTabsCmd(),
		newWaitCmd(),
		newSnapshotCmd(),
		newWatchCmd(),
	)
	return root
}
