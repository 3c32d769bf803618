package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/its-jojoo/tabshelf/internal/adapter/tabsource"
)

var (
	watchTabs     string
	watchInterval time.Duration
	watchFormat   string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reclassify whenever the tab file changes",
	Long: `Evaluate the tab file once as a cold start, then again as a same-session
pass every time the file changes. Stops on Ctrl+C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchTabs, "tabs", "tabs.yaml", "Tab file (YAML or JSON)")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "Poll interval")
	watchCmd.Flags().StringVar(&watchFormat, "format", "json", "Output format (json, yaml)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	src := tabsource.NewFileSource(watchTabs, watchInterval)
	events, err := src.Watch(ctx)
	if err != nil {
		return err
	}

	refresh := func(ctx context.Context) {
		snap, err := src.Read()
		if err != nil {
			a.log.Warn().Err(err).Str("path", watchTabs).Msg("skipping unreadable tab file")
			return
		}
		res, err := a.svc.Refresh(ctx, snap.Tabs, snap.Selected)
		if err != nil {
			a.log.Warn().Err(err).Msg("evaluation not persisted")
		}
		if err := printValue(cmd.OutOrStdout(), watchFormat, res); err != nil {
			a.log.Error().Err(err).Msg("print buckets")
		}
	}

	refresh(ctx)
	fmt.Fprintln(cmd.ErrOrStderr(), "watching", watchTabs, "(Ctrl+C to exit)")
	for range events {
		refresh(ctx)
	}
	return nil
}
