// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cavenditti/quickslides/pkg/types"
)

// fakeCompiler implements typst.Compiler for testing. It records Compile
// calls and writes a placeholder PDF unless configured to fail.
type fakeCompiler struct {
	err   error
	calls [][2]string
}

func (f *fakeCompiler) Name() string    { return "typst" }
func (f *fakeCompiler) Available() bool { return true }

func (f *fakeCompiler) Compile(srcPath, outPath string) error {
	f.calls = append(f.calls, [2]string{srcPath, outPath})
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("%PDF"), 0o644)
}

// setupDeck writes a minimal Markdown deck into a temp dir.
func setupDeck(t *testing.T, name string) (mdPath, tmpDir string) {
	t.Helper()
	tmpDir = t.TempDir()
	mdPath = filepath.Join(tmpDir, name)
	content := "---\ntitle: Deck\n---\n# Intro\n## Details\n- a\n"
	if err := os.WriteFile(mdPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return mdPath, tmpDir
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name       string
		comp       *fakeCompiler
		opts       Options
		missing    bool // point at a nonexistent input
		wantStatus types.ConversionStatus
		wantLog    string
		wantPDF    bool
	}{
		{
			name:       "markup only",
			comp:       &fakeCompiler{},
			opts:       Options{MarkupOnly: true},
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:       "full pipeline compiles pdf",
			comp:       &fakeCompiler{},
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
			wantPDF:    true,
		},
		{
			name:       "missing input",
			comp:       &fakeCompiler{},
			missing:    true,
			wantStatus: types.ConversionFailed,
			wantLog:    "failed:",
		},
		{
			name:       "compiler failure",
			comp:       &fakeCompiler{err: errors.New("syntax error at 3:1")},
			wantStatus: types.ConversionFailed,
			wantLog:    "syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mdPath, tmpDir := setupDeck(t, "deck.md")
			if tt.missing {
				mdPath = filepath.Join(tmpDir, "nope.md")
			}

			var log bytes.Buffer
			status := ConvertFile(mdPath, tt.opts, tt.comp, &log)

			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log %q does not contain %q", log.String(), tt.wantLog)
			}
			if tt.wantPDF {
				if _, err := os.Stat(filepath.Join(tmpDir, "deck.pdf")); err != nil {
					t.Errorf("expected PDF output: %v", err)
				}
			}
		})
	}
}

func TestConvertFile_WritesMarkup(t *testing.T) {
	mdPath, tmpDir := setupDeck(t, "deck.md")

	var log bytes.Buffer
	status := ConvertFile(mdPath, Options{MarkupOnly: true}, nil, &log)
	if status != types.ConversionDone {
		t.Fatalf("expected ConversionDone, got %q", status)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "deck.typ"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, `title: "Deck"`) {
		t.Error("markup should carry front-matter title")
	}
	if !strings.Contains(content, "#section[Intro]") {
		t.Error("markup should contain the section slide")
	}
}

func TestConvertFile_OutputOverride(t *testing.T) {
	mdPath, tmpDir := setupDeck(t, "deck.md")
	outPath := filepath.Join(tmpDir, "custom.typ")

	var log bytes.Buffer
	ConvertFile(mdPath, Options{MarkupOnly: true, OutputPath: outPath}, nil, &log)

	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("expected output at %s: %v", outPath, err)
	}
}

func TestConvertBatch(t *testing.T) {
	tmpDir := t.TempDir()
	good := filepath.Join(tmpDir, "good.md")
	if err := os.WriteFile(good, []byte("# A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(tmpDir, "missing.md")

	var log bytes.Buffer
	result := ConvertBatch([]string{good, missing}, Options{MarkupOnly: true}, nil, &log)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Total() != 2 {
		t.Errorf("total = %d, want 2", result.Total())
	}
	if !strings.Contains(log.String(), "Batch summary:") {
		t.Error("batch output should contain summary line")
	}
}

func TestConvertBatch_OutputOverrideIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a.md", "b.md"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("# "+name+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	override := filepath.Join(tmpDir, "custom.typ")

	var log bytes.Buffer
	paths := []string{filepath.Join(tmpDir, "a.md"), filepath.Join(tmpDir, "b.md")}
	result := ConvertBatch(paths, Options{MarkupOnly: true, OutputPath: override}, nil, &log)

	if result.Converted != 2 {
		t.Fatalf("converted = %d, want 2", result.Converted)
	}
	for _, name := range []string{"a.typ", "b.typ"} {
		if _, err := os.Stat(filepath.Join(tmpDir, name)); err != nil {
			t.Errorf("expected per-input output %s: %v", name, err)
		}
	}
	if _, err := os.Stat(override); err == nil {
		t.Errorf("override path %s should not be written in batch mode", override)
	}
	if !strings.Contains(log.String(), "warning:") {
		t.Error("batch output should warn that the override is ignored")
	}
}

func TestDiscoverDecks(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.md", "a.md", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := DiscoverDecks(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{filepath.Join(tmpDir, "a.md"), filepath.Join(tmpDir, "b.md")}
	if len(got) != len(want) {
		t.Fatalf("got %d files, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiscoverDecks_MissingDir(t *testing.T) {
	_, err := DiscoverDecks(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestPathDerivation(t *testing.T) {
	if got := OutputPath("talks/deck.md"); got != "talks/deck.typ" {
		t.Errorf("OutputPath = %q", got)
	}
	if got := PDFPath("talks/deck.typ"); got != "talks/deck.pdf" {
		t.Errorf("PDFPath = %q", got)
	}
}
