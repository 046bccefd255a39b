package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompilationTimeout is the default bound for a single pdflatex run.
const CompilationTimeout = 30 * time.Second

const compileJobName = "resume"

// CompileLaTeX compiles a LaTeX document with pdflatex and returns the PDF.
// Requires a TeX distribution (TeX Live, MiKTeX) on PATH. The work directory
// is removed afterwards.
func CompileLaTeX(ctx context.Context, tex string, timeout time.Duration) ([]byte, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}
	if timeout <= 0 {
		timeout = CompilationTimeout
	}

	workDir, err := os.MkdirTemp("", "latex-compile-*")
	if err != nil {
		return nil, &CompilationError{Message: "failed to create temporary working directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, compileJobName+".tex")
	if err := os.WriteFile(texPath, []byte(tex), 0644); err != nil {
		return nil, &CompilationError{
			Message: fmt.Sprintf("failed to write LaTeX file to working directory: %s", workDir),
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// nonstopmode keeps pdflatex from waiting on stdin after an error
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-halt-on-error",
		"-output-directory", workDir, texPath)
	cmd.Dir = workDir

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output
	runErr := cmd.Run()

	if runErr != nil {
		return nil, &CompilationError{
			Message:   "LaTeX compilation failed",
			LogOutput: output.String(),
			Cause:     runErr,
		}
	}

	pdf, err := os.ReadFile(filepath.Join(workDir, compileJobName+".pdf"))
	if err != nil {
		return nil, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: output.String(),
			Cause:     err,
		}
	}
	return pdf, nil
}
