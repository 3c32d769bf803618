package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "tabshelf",
	Short: "Classify open tabs into normal, inactive and recently closed",
	Long: `tabshelf runs the tab-activity classification engine against a tab file
and a persisted classification store. It never closes tabs; it only labels them.

Tabs not used for 4 days are marked for the inactive shelf, tabs older than
30 days for recently closed. Marks only take effect on the next cold start.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./tabshelf.yaml or ~/.config/tabshelf/tabshelf.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
