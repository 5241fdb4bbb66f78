// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cavenditti/quickslides/internal/convert"
	"github.com/cavenditti/quickslides/internal/typst"
)

var compileCmd = &cobra.Command{
	Use:   "compile [files...]",
	Short: "Compile existing Typst markup files to PDF",
	Long: `Compile runs the typst compiler on .typ files produced earlier, writing a
PDF next to each input. Compiler diagnostics are forwarded verbatim.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	bin, _ := cmd.Flags().GetString("typst-bin")
	if bin == "" {
		bin = viper.GetString("typst.bin")
	}
	comp, err := typst.DetectCompiler(bin, os.Stderr)
	if err != nil {
		return err
	}

	failed := 0
	for _, p := range args {
		pdfPath := convert.PDFPath(p)
		if err := comp.Compile(p, pdfPath); err != nil {
			fmt.Fprintf(os.Stdout, "failed:    %s (%v)\n", p, err)
			failed++
			continue
		}
		fmt.Fprintf(os.Stdout, "compiled:  %s -> %s\n", p, pdfPath)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed compilation", failed)
	}
	return nil
}

func init() {
	compileCmd.Flags().String("typst-bin", "", "typst compiler binary (default from config)")

	rootCmd.AddCommand(compileCmd)
}
