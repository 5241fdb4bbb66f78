// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package typst wraps the external typst compiler binary. The compiler is an
// independent collaborator: quickslides hands it a markup file and an output
// path and forwards its diagnostics verbatim.
package typst

import (
	"fmt"
	"io"
	"os/exec"
)

// defaultBin is the compiler binary looked up on PATH when no override is given.
const defaultBin = "typst"

// Compiler compiles Typst markup files into PDFs.
type Compiler interface {
	// Name returns the compiler binary name or path.
	Name() string

	// Available reports whether the binary exists on PATH and responds
	// to a version query.
	Available() bool

	// Compile compiles the markup at srcPath into a PDF at outPath.
	// The compiler's stderr is forwarded to the writer given at detection
	// time; a non-zero exit comes back as an error.
	Compile(srcPath, outPath string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunForward(name string, args []string, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunForward(name string, args []string, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stderr = stderr
	return cmd.Run()
}

// compiler implements Compiler for a typst binary on the local machine.
type compiler struct {
	bin    string
	stderr io.Writer
	exec   executor
}

func (c *compiler) Name() string { return c.bin }

func (c *compiler) Available() bool {
	if _, err := c.exec.LookPath(c.bin); err != nil {
		return false
	}
	return c.exec.RunSilent(c.bin, "--version") == nil
}

func (c *compiler) Compile(srcPath, outPath string) error {
	args := []string{"compile", srcPath, outPath}
	if err := c.exec.RunForward(c.bin, args, c.stderr); err != nil {
		return fmt.Errorf("compiling %s with %s: %w", srcPath, c.bin, err)
	}
	return nil
}

var defaultExec = &osExecutor{}

// DetectCompiler locates the typst binary (bin, or "typst" when bin is empty)
// and verifies it is operational. Compiler diagnostics during later Compile
// calls are forwarded to stderr.
func DetectCompiler(bin string, stderr io.Writer) (Compiler, error) {
	return detectCompiler(bin, stderr, defaultExec)
}

func detectCompiler(bin string, stderr io.Writer, exec executor) (Compiler, error) {
	if bin == "" {
		bin = defaultBin
	}
	if stderr == nil {
		stderr = io.Discard
	}
	c := &compiler{bin: bin, stderr: stderr, exec: exec}
	if !c.Available() {
		return nil, fmt.Errorf("typst compiler not available: %s not found or not operational", bin)
	}
	return c, nil
}
