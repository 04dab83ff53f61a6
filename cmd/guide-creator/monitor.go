// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guide-creator/internal/monitor"
	"github.com/pdiddy/guide-creator/internal/tracking"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch output directories during a guide creation run",
	Long: `Monitor watches the output and logs directories from a second terminal
while a guide run is in progress. New artifacts are reported as they land,
and a summary line with elapsed time, call count, and estimated spend
prints on an interval. Stop with Ctrl-C.`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().Duration("interval", 5*time.Second, "summary interval")

	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	interval, _ := cmd.Flags().GetDuration("interval")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	m := &monitor.Monitor{
		OutputDir: cfg.Output.Dir,
		LogsDir:   cfg.Output.LogsDir,
		Interval:  interval,
	}

	store, err := tracking.Open(cfg.Tracking.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: tracking store unavailable: %v\n", err)
	} else {
		defer store.Close()
		m.Store = store
	}

	return m.Run(ctx)
}
