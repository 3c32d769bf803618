package main

import (
	"github.com/spf13/cobra"

	"github.com/its-jojoo/tabshelf/internal/adapter/tabsource"
)

var (
	bucketsTabs   string
	bucketsFormat string
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Show the stored buckets for a tab file without reclassifying",
	RunE:  runBuckets,
}

func init() {
	bucketsCmd.Flags().StringVar(&bucketsTabs, "tabs", "tabs.yaml", "Tab file (YAML or JSON)")
	bucketsCmd.Flags().StringVar(&bucketsFormat, "format", "json", "Output format (json, yaml)")
	rootCmd.AddCommand(bucketsCmd)
}

func runBuckets(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	snap, err := tabsource.NewFileSource(bucketsTabs, 0).Read()
	if err != nil {
		return err
	}
	return printValue(cmd.OutOrStdout(), bucketsFormat, a.svc.CurrentBuckets(cmd.Context(), snap.Tabs))
}
