// Package compile turns rendered LaTeX into a PDF via an external engine.
package compile

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// Timeout is the maximum time to wait for one engine pass
	Timeout = 60 * time.Second

	texFileName = "cv.tex"
	pdfFileName = "cv.pdf"
)

// supportedEngines lists the accepted LaTeX engines.
var supportedEngines = map[string]bool{
	"pdflatex": true,
	"xelatex":  true,
	"lualatex": true,
}

// Result describes a successful compilation
type Result struct {
	RunID string // identifies the compilation working directory
	Log   string // combined engine output of both passes
}

// SupportedEngine reports whether engine is one of the accepted LaTeX
// engines.
func SupportedEngine(engine string) bool {
	return supportedEngines[engine]
}

// ToPDF writes latex to a temporary working directory, compiles it in two
// passes so references settle, and copies the PDF to outputPath. Engine
// failures carry the compiler log verbatim.
func ToPDF(ctx context.Context, latex, outputPath, engine string) (*Result, error) {
	if !SupportedEngine(engine) {
		return nil, &CompilationError{
			Message: fmt.Sprintf("unsupported LaTeX engine %q (use pdflatex, xelatex or lualatex)", engine),
		}
	}

	if _, err := exec.LookPath(engine); err != nil {
		return nil, &CompilationError{
			Message: fmt.Sprintf("%s not found in PATH. Please install a LaTeX distribution (e.g. TeX Live, MiKTeX)", engine),
			Cause:   err,
		}
	}

	runID := uuid.NewString()
	workDir := filepath.Join(os.TempDir(), "cvgen-"+runID)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, &CompilationError{
			Message: "failed to create working directory",
			Cause:   err,
		}
	}
	defer os.RemoveAll(workDir)

	texPath := filepath.Join(workDir, texFileName)
	if err := os.WriteFile(texPath, []byte(latex), 0o644); err != nil {
		return nil, &CompilationError{
			Message: "failed to write LaTeX file",
			Cause:   err,
		}
	}

	// Two passes: the second resolves references produced by the first.
	var log strings.Builder
	for pass := 1; pass <= 2; pass++ {
		output, err := runEngine(ctx, engine, workDir, texPath)
		log.WriteString(output)
		if err != nil {
			return nil, &CompilationError{
				Message:   fmt.Sprintf("LaTeX compilation failed with %s (pass %d)", engine, pass),
				LogOutput: log.String(),
				Cause:     err,
			}
		}
	}

	pdfPath := filepath.Join(workDir, pdfFileName)
	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, &CompilationError{
			Message:   "PDF generation failed: output file not found",
			LogOutput: log.String(),
			Cause:     err,
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &CompilationError{
				Message: fmt.Sprintf("failed to create output directory %s", dir),
				Cause:   err,
			}
		}
	}
	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return nil, &CompilationError{
			Message: fmt.Sprintf("failed to write PDF to %s", outputPath),
			Cause:   err,
		}
	}

	return &Result{RunID: runID, Log: log.String()}, nil
}

// runEngine executes one engine pass and returns its combined output.
func runEngine(ctx context.Context, engine, workDir, texPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts.
	cmd := exec.CommandContext(ctx, engine, "-interaction=nonstopmode", "-output-directory", workDir, texPath)

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	return output.String(), err
}
