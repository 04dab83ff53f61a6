// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guide-creator/internal/export"
	"github.com/pdiddy/guide-creator/internal/guide"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Render a compiled guide to standalone HTML",
	Long: `Export converts a compiled guide Markdown file to a self-contained HTML
page written next to the source. Without an argument it exports
output/complete_guide.md.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	mdPath := filepath.Join(cfg.Output.Dir, guide.GuideFile)
	if len(args) == 1 {
		mdPath = args[0]
	}

	outPath, err := export.File(mdPath)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %s\n", outPath)
	return nil
}
