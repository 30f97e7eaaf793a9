// Package cmd contains the gyat terminal app.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log mining events to stderr.")
}

var rootCmd = &cobra.Command{
	Use:          "gyat",
	Short:        "GYATCOIN proof of work mining simulator",
	SilenceUsage: true,
}

// Execute runs the command line and terminates the process on error. An
// interrupt stops a simulation between blocks.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
