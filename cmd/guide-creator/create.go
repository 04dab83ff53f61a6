// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guide-creator/internal/crew"
	"github.com/pdiddy/guide-creator/internal/guide"
	"github.com/pdiddy/guide-creator/internal/llm"
	"github.com/pdiddy/guide-creator/internal/telemetry"
	"github.com/pdiddy/guide-creator/internal/tracking"
	"github.com/pdiddy/guide-creator/pkg/types"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a complete guide: outline, sections, compiled document",
	Long: `Create runs the full flow. It prompts for a topic and an audience level
(beginner, intermediate, or advanced) unless --topic and --audience are
given, generates a structured outline, writes each section through the
writer/reviewer crew, and compiles everything into
output/complete_guide.md.`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().String("topic", "", "guide topic (skips the interactive prompt)")
	createCmd.Flags().String("audience", "", "audience level: beginner, intermediate, or advanced")
	createCmd.Flags().String("model", "", "model identifier override")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.LLM.Model = model
	}

	topic, audience, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	provider, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: telemetry disabled: %v\n", err)
		provider, _ = telemetry.Setup(ctx, types.TelemetryConfig{})
	}
	defer provider.Shutdown(context.Background())

	if provider.Enabled() {
		fmt.Fprintf(os.Stderr, "Phoenix tracing enabled: project %s\n", cfg.Telemetry.Project)
	} else {
		fmt.Fprintln(os.Stderr, "PHOENIX_API_KEY not set; running without trace export")
	}

	client, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return err
	}

	def, err := crew.LoadDir(cfg.Crew.Dir)
	if err != nil {
		return err
	}

	flow := &guide.Flow{
		Client:     client,
		Tracer:     provider.Tracer(),
		MaxRetries: cfg.LLM.MaxRetries,
		OutputDir:  cfg.Output.Dir,
		Progress:   os.Stdout,
	}

	var run *tracking.Run
	if cfg.Tracking.Enabled {
		store, err := tracking.Open(cfg.Tracking.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: tracking disabled: %v\n", err)
		} else {
			defer store.Close()
			run, err = store.StartRun(ctx, topic, string(audience))
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: tracking disabled: %v\n", err)
				run = nil
			}
		}
	}
	if run != nil {
		flow.Steps = run
		client = tracking.NewMeteredClient(client, run)
		flow.Client = client
	}
	flow.Crew = crew.New(def, client, cfg.LLM.MaxRetries)

	result, err := flow.Run(ctx, topic, audience)
	if err != nil {
		return err
	}

	if run != nil {
		if ferr := run.Finish(ctx, result.Sections); ferr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing tracking run: %v\n", ferr)
		}
	}

	fmt.Println("\nYour comprehensive guide is ready:")
	fmt.Printf("  outline: %s\n", result.OutlinePath)
	fmt.Printf("  guide:   %s\n", result.GuidePath)
	if provider.Enabled() {
		fmt.Println("\nCheck your Phoenix dashboard for traces: https://app.phoenix.arize.com")
	}
	return nil
}

// resolveInputs returns the topic and audience level, prompting on stdin
// for anything the flags left blank. The audience prompt repeats until a
// valid level is entered.
func resolveInputs(cmd *cobra.Command) (string, types.AudienceLevel, error) {
	topic, _ := cmd.Flags().GetString("topic")
	audienceFlag, _ := cmd.Flags().GetString("audience")

	reader := bufio.NewScanner(os.Stdin)

	if topic == "" {
		fmt.Println("\n=== Create Your Comprehensive Guide ===")
		fmt.Print("\nWhat topic would you like to create a guide for? ")
		if !reader.Scan() {
			return "", "", fmt.Errorf("reading topic: %w", reader.Err())
		}
		topic = strings.TrimSpace(reader.Text())
		if topic == "" {
			return "", "", fmt.Errorf("topic is required")
		}
	}

	if audienceFlag != "" {
		audience, err := types.ParseAudienceLevel(strings.ToLower(audienceFlag))
		if err != nil {
			return "", "", err
		}
		return topic, audience, nil
	}

	for {
		fmt.Print("Who is your target audience? (beginner/intermediate/advanced) ")
		if !reader.Scan() {
			return "", "", fmt.Errorf("reading audience level: %w", reader.Err())
		}
		audience, err := types.ParseAudienceLevel(strings.ToLower(strings.TrimSpace(reader.Text())))
		if err != nil {
			fmt.Println("Please enter 'beginner', 'intermediate', or 'advanced'")
			continue
		}
		return topic, audience, nil
	}
}
