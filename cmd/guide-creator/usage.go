// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guide-creator/internal/tracking"
	"github.com/pdiddy/guide-creator/internal/usage"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Report estimated API spend across recorded runs",
	Long: `Usage prints the pricing reference, the per-run estimates recorded in the
local tracking database, and the aggregate total. With --remote it also
queries the OpenAI usage endpoint for the actual figures, which lag and may
differ from the local estimates.`,
	RunE: runUsage,
}

func init() {
	usageCmd.Flags().Bool("remote", false, "also query the OpenAI usage endpoint")
	usageCmd.Flags().Int("days", 1, "days of remote usage to request")

	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	ctx := cmd.Context()

	store, err := tracking.Open(cfg.Tracking.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := usage.WriteReport(ctx, os.Stdout, store); err != nil {
		return err
	}

	remote, _ := cmd.Flags().GetBool("remote")
	if !remote {
		return nil
	}

	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("remote usage requires an OpenAI API key")
	}

	days, _ := cmd.Flags().GetInt("days")
	checker := &usage.Checker{APIKey: cfg.LLM.APIKey}
	payload, err := checker.Fetch(ctx, days)
	if err != nil {
		// The usage endpoint is flaky and gated; report and move on.
		fmt.Fprintf(os.Stderr, "warning: remote usage unavailable: %v\n", err)
		return nil
	}
	usage.WriteRemote(os.Stdout, payload)
	return nil
}
