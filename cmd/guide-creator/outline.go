// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guide-creator/internal/llm"
	"github.com/pdiddy/guide-creator/internal/outline"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Generate only the guide outline",
	Long: `Outline runs the first stage in isolation: one structured model call
producing the guide title, introduction, sections, and conclusion, saved as
output/guide_outline.json. Useful for reviewing structure before spending
on section generation.`,
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().String("topic", "", "guide topic (skips the interactive prompt)")
	outlineCmd.Flags().String("audience", "", "audience level: beginner, intermediate, or advanced")
	outlineCmd.Flags().String("model", "", "model identifier override")

	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.LLM.Model = model
	}

	topic, audience, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	o, err := outline.Generate(ctx, client, topic, audience, cfg.LLM.MaxRetries)
	if err != nil {
		return err
	}

	path, err := outline.Write(o, cfg.Output.Dir)
	if err != nil {
		return err
	}

	fmt.Printf("Guide outline created with %d sections: %s\n", len(o.Sections), path)
	return nil
}
