// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements Markdown-to-Typst slide conversion: front-matter
// extraction, slide segmentation on H1/H2 headings, inline translation to
// Typst markup, and the file pipeline that writes .typ output and hands it to
// the typst compiler.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cavenditti/quickslides/internal/typst"
	"github.com/cavenditti/quickslides/pkg/types"
)

// Options control file conversion.
type Options struct {
	// OutputPath overrides the derived .typ path for a single input.
	// ConvertBatch ignores it when given more than one file so the inputs
	// do not clobber each other's output.
	OutputPath string

	// MarkupOnly skips PDF compilation.
	MarkupOnly bool

	// Overrides take precedence over front-matter metadata.
	Overrides types.Meta
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of decks processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any decks failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath derives the .typ path for a Markdown input.
func OutputPath(mdPath string) string {
	return strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".typ"
}

// PDFPath derives the .pdf path for a Typst markup file.
func PDFPath(typPath string) string {
	return strings.TrimSuffix(typPath, filepath.Ext(typPath)) + ".pdf"
}

// ConvertFile converts one Markdown file to Typst markup and, unless
// MarkupOnly is set, compiles the result to PDF with comp. Per-file status
// goes to w. Only I/O and compiler failures fail a file; malformed Markdown
// content never does.
func ConvertFile(path string, opts Options, comp typst.Compiler, w io.Writer) types.ConversionStatus {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
		return types.ConversionFailed
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = OutputPath(path)
	}

	markup := Convert(string(data), opts.Overrides)
	if err := os.WriteFile(outPath, []byte(markup), 0o644); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
		return types.ConversionFailed
	}

	if opts.MarkupOnly || comp == nil {
		fmt.Fprintf(w, "converted: %s -> %s\n", path, outPath)
		return types.ConversionDone
	}

	pdfPath := PDFPath(outPath)
	if err := comp.Compile(outPath, pdfPath); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
		return types.ConversionFailed
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", path, pdfPath)
	return types.ConversionDone
}

// ConvertBatch processes a list of Markdown files, printing per-file status
// to w and returning a summary.
func ConvertBatch(paths []string, opts Options, comp typst.Compiler, w io.Writer) BatchResult {
	if opts.OutputPath != "" && len(paths) > 1 {
		fmt.Fprintf(w, "warning:   ignoring output override %s for %d inputs\n", opts.OutputPath, len(paths))
		opts.OutputPath = ""
	}

	var result BatchResult
	for _, p := range paths {
		switch ConvertFile(p, opts, comp, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}

// DiscoverDecks returns the sorted Markdown files directly inside dir.
func DiscoverDecks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading slides directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
