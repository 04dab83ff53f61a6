// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the guide-creator CLI: a two-stage
// pipeline that outlines a topic guide with one structured model call, then
// writes and reviews each section through a content crew.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/guide-creator/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the guide-creator CLI.
var rootCmd = &cobra.Command{
	Use:   "guide-creator",
	Short: "Create comprehensive topic guides with an AI writer/reviewer crew",
	Long: `guide-creator generates a complete learning guide on any topic in two
stages. The outline stage makes one structured model call and saves the
result as JSON. The content stage walks the outline in order, drafting each
section with a writer agent and polishing it with a reviewer agent, then
compiles everything into a single Markdown document.

Traces export to an Arize Phoenix collector when PHOENIX_API_KEY is set,
and every run's step timings and estimated spend land in a local tracking
database for the usage report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./guide-creator.yaml or ~/.config/guide-creator/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("guide-creator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "guide-creator"))
		}
	}

	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.max_retries", 3)
	viper.SetDefault("crew.dir", "crew")
	viper.SetDefault("output.dir", "output")
	viper.SetDefault("output.logs_dir", "logs")
	viper.SetDefault("tracking.enabled", true)

	viper.SetEnvPrefix("GUIDE_CREATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
