// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cavenditti/quickslides/internal/convert"
	"github.com/cavenditti/quickslides/internal/typst"
	"github.com/cavenditti/quickslides/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert Markdown files to Typst slide markup and PDF",
	Long: `Convert reads Markdown documents, extracts their front matter, and writes
Typst slide-deck markup next to each input (or to --output). Unless
--markup-only is set, the typst compiler turns the markup into a PDF.

Metadata flags (--title, --subtitle, --author, --info) override the
corresponding front-matter fields.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	paths := args
	batch, _ := cmd.Flags().GetBool("batch")
	if batch {
		found, err := convert.DiscoverDecks(cfg.SlidesDir)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return fmt.Errorf("no Markdown files found in %s", cfg.SlidesDir)
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input files: pass Markdown files or use --batch")
	}

	opts := convertOptions(cmd)
	if opts.OutputPath != "" && len(paths) > 1 {
		return fmt.Errorf("--output is only valid with a single input file")
	}

	var comp typst.Compiler
	if !opts.MarkupOnly {
		c, err := typst.DetectCompiler(cfg.TypstBin, os.Stderr)
		if err != nil {
			return fmt.Errorf("%w (use --markup-only to skip PDF output)", err)
		}
		comp = c
	}

	if len(paths) == 1 {
		if convert.ConvertFile(paths[0], opts, comp, os.Stdout) == types.ConversionFailed {
			return fmt.Errorf("conversion failed: %s", paths[0])
		}
		return nil
	}

	result := convert.ConvertBatch(paths, opts, comp, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

// convertConfig resolves pipeline defaults: flags win over config file and
// environment.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	slidesDir, _ := cmd.Flags().GetString("slides-dir")
	if slidesDir == "" {
		slidesDir = viper.GetString("slides.dir")
	}
	typstBin, _ := cmd.Flags().GetString("typst-bin")
	if typstBin == "" {
		typstBin = viper.GetString("typst.bin")
	}
	return types.ConvertConfig{
		SlidesDir: slidesDir,
		TypstBin:  typstBin,
	}
}

func convertOptions(cmd *cobra.Command) convert.Options {
	output, _ := cmd.Flags().GetString("output")
	markupOnly, _ := cmd.Flags().GetBool("markup-only")
	title, _ := cmd.Flags().GetString("title")
	subtitle, _ := cmd.Flags().GetString("subtitle")
	author, _ := cmd.Flags().GetString("author")
	info, _ := cmd.Flags().GetString("info")

	return convert.Options{
		OutputPath: output,
		MarkupOnly: markupOnly,
		Overrides: types.Meta{
			Title:    title,
			Subtitle: subtitle,
			Author:   author,
			Info:     info,
		},
	}
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file path (default: input filename with .typ extension)")
	convertCmd.Flags().Bool("markup-only", false, "write Typst markup without compiling a PDF")
	convertCmd.Flags().Bool("batch", false, "convert every Markdown file in the slides directory")
	convertCmd.Flags().String("slides-dir", "", "directory scanned by --batch (default from config)")
	convertCmd.Flags().String("typst-bin", "", "typst compiler binary (default from config)")
	convertCmd.Flags().String("title", "", "presentation title (overrides front matter)")
	convertCmd.Flags().String("subtitle", "", "presentation subtitle (overrides front matter)")
	convertCmd.Flags().String("author", "", "presentation author (overrides front matter)")
	convertCmd.Flags().String("info", "", "presentation info line, typically a date (overrides front matter)")

	rootCmd.AddCommand(convertCmd)
}
