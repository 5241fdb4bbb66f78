// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quickslides CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the quickslides CLI.
var rootCmd = &cobra.Command{
	Use:   "quickslides",
	Short: "Convert Markdown documents into Typst slide decks",
	Long: `quickslides turns Markdown documents into Typst slide-deck markup and,
when the typst compiler is available, into PDF presentations.

Level-1 headings become section slides, level-2 headings become content
slides, and front-matter metadata fills the front slide. The convert
subcommand runs the full pipeline; compile runs the typst compiler on
markup that already exists.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quickslides.yaml or ~/.config/quickslides/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quickslides")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quickslides"))
		}
	}

	viper.SetDefault("typst.bin", "typst")
	viper.SetDefault("slides.dir", "slides")

	viper.SetEnvPrefix("QUICKSLIDES")
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
