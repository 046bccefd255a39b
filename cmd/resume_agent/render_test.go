package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_DefaultSample(t *testing.T) {
	outDir := t.TempDir()

	stdout, _, err := executeCommand(t, "render", "--out", outDir)
	require.NoError(t, err)

	htmlPath := filepath.Join(outDir, "resume_professional.html")
	texPath := filepath.Join(outDir, "resume_professional.tex")
	assert.Contains(t, stdout, htmlPath)
	assert.Contains(t, stdout, texPath)

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Jane Doe")

	tex, err := os.ReadFile(texPath)
	require.NoError(t, err)
	assert.Contains(t, string(tex), `\documentclass`)
	assert.NoFileExists(t, filepath.Join(outDir, "resume_professional.pdf"))
}

func TestRenderCommand_YAMLInputModernTemplate(t *testing.T) {
	outDir := t.TempDir()
	input := writeSampleFile(t, sample.FormatYAML)

	_, _, err := executeCommand(t, "render", "--in", input, "--template", "modern", "--out", outDir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "resume_modern.html"))
	assert.FileExists(t, filepath.Join(outDir, "resume_modern.tex"))
}

func TestRenderCommand_Verbose(t *testing.T) {
	stdout, _, err := executeCommand(t, "render", "--out", t.TempDir(), "--verbose")
	require.NoError(t, err)

	upper := strings.ToUpper(stdout)
	assert.Contains(t, upper, "RESUME")
	assert.Contains(t, stdout, "Jane Doe")
}

func TestRenderCommand_UnknownTemplate(t *testing.T) {
	_, _, err := executeCommand(t, "render", "--template", "fancy", "--out", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, rendering.ErrUnknownTemplate))
}

func TestRenderCommand_InvalidInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"education": "nope"}`), 0644))

	_, _, err := executeCommand(t, "render", "--in", path, "--out", t.TempDir())
	assert.Error(t, err)
}

func TestRenderCommand_PDF(t *testing.T) {
	original := pdfPrinter
	t.Cleanup(func() { pdfPrinter = original })

	var gotHTML string
	pdfPrinter = func(_ context.Context, html string, timeout time.Duration) ([]byte, error) {
		gotHTML = html
		assert.Equal(t, rendering.DefaultPDFTimeout, timeout)
		return []byte("%PDF-1.4 fake"), nil
	}

	outDir := t.TempDir()
	_, _, err := executeCommand(t, "render", "--out", outDir, "--pdf")
	require.NoError(t, err)

	pdf, err := os.ReadFile(filepath.Join(outDir, "resume_professional.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(pdf))
	assert.Contains(t, gotHTML, "Jane Doe")
}

func TestRenderCommand_PDFFailure(t *testing.T) {
	original := pdfPrinter
	t.Cleanup(func() { pdfPrinter = original })
	pdfPrinter = func(context.Context, string, time.Duration) ([]byte, error) {
		return nil, &rendering.RenderError{Message: "no browser"}
	}

	outDir := t.TempDir()
	_, _, err := executeCommand(t, "render", "--out", outDir, "--pdf")
	require.Error(t, err)

	var renderErr *rendering.RenderError
	assert.ErrorAs(t, err, &renderErr)
	assert.NoFileExists(t, filepath.Join(outDir, "resume_professional.html"))
}

func TestRenderCommand_Compile(t *testing.T) {
	original := latexCompiler
	t.Cleanup(func() { latexCompiler = original })

	var gotTeX string
	latexCompiler = func(_ context.Context, tex string, _ time.Duration) ([]byte, error) {
		gotTeX = tex
		return []byte("%PDF-1.5 compiled"), nil
	}

	outDir := t.TempDir()
	_, _, err := executeCommand(t, "render", "--out", outDir, "--compile", "--template", "modern")
	require.NoError(t, err)

	pdf, err := os.ReadFile(filepath.Join(outDir, "resume_modern.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.5 compiled", string(pdf))
	assert.Contains(t, gotTeX, `\documentclass`)
}

func TestRenderCommand_PDFAndCompileExclusive(t *testing.T) {
	_, _, err := executeCommand(t, "render", "--out", t.TempDir(), "--pdf", "--compile")
	assert.Error(t, err)
}
