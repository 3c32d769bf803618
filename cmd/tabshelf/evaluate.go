package main

import (
	"github.com/spf13/cobra"

	"github.com/its-jojoo/tabshelf/internal/adapter/tabsource"
	"github.com/its-jojoo/tabshelf/internal/core"
)

var (
	evaluateTabs        string
	evaluateSameSession bool
	evaluateFormat      string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Reclassify the tabs in a tab file and persist the result",
	Long: `Run one classification pass over the tabs in --tabs and print the buckets.

Each invocation is a new process, so it runs as a cold start unless
--same-session is given.

Examples:
  tabshelf evaluate --tabs tabs.yaml
  tabshelf evaluate --tabs tabs.yaml --same-session --format yaml`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateTabs, "tabs", "tabs.yaml", "Tab file (YAML or JSON)")
	evaluateCmd.Flags().BoolVar(&evaluateSameSession, "same-session", false, "Evaluate as a same-session pass")
	evaluateCmd.Flags().StringVar(&evaluateFormat, "format", "json", "Output format (json, yaml)")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	snap, err := tabsource.NewFileSource(evaluateTabs, 0).Read()
	if err != nil {
		return err
	}

	mode := core.ColdStart
	if evaluateSameSession {
		mode = core.SameSession
	}

	store, err := a.svc.Evaluate(cmd.Context(), snap.Tabs, snap.Selected, mode)
	if err != nil {
		// non-fatal: the result of this pass is still valid
		a.log.Warn().Err(err).Msg("evaluation not persisted")
	}
	return printValue(cmd.OutOrStdout(), evaluateFormat, core.CurrentBuckets(snap.Tabs, store))
}
