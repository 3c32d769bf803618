package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/its-jojoo/tabshelf/internal/core"
)

type exportRecord struct {
	TabID             string `json:"tabId" yaml:"tabId"`
	CurrentState      string `json:"currentState" yaml:"currentState"`
	PendingTransition string `json:"pendingTransition,omitempty" yaml:"pendingTransition,omitempty"`
}

var (
	exportOut    string
	exportFormat string
)

var removeCmd = &cobra.Command{
	Use:   "remove TAB_ID...",
	Short: "Forget permanently closed tabs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRemove,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all persisted classifications",
	RunE:  runClear,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump persisted classifications",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format (json, yaml)")
	rootCmd.AddCommand(removeCmd, clearCmd, exportCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	for _, id := range args {
		if err := a.svc.Remove(cmd.Context(), id); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "removed", len(args), "tab(s)")
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.svc.Clear(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "cleared")
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	export := exportRecords(a.svc.Classifications(cmd.Context()))

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := printValue(w, exportFormat, export); err != nil {
		return err
	}
	if exportOut != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "exported", len(export), "records to", exportOut)
	}
	return nil
}

func exportRecords(c core.Classifications) []exportRecord {
	out := make([]exportRecord, 0, len(c))
	for id, rec := range c {
		out = append(out, exportRecord{
			TabID:             id,
			CurrentState:      string(rec.State),
			PendingTransition: string(rec.Pending),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TabID < out[j].TabID })
	return out
}
