package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-builder/internal/formdata"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a profile file as HTML and LaTeX",
	Long: `Render a JSON or YAML profile as resume_<template>.html and resume_<template>.tex,
and optionally resume_<template>.pdf. The PDF is printed from the HTML with a headless
browser (--pdf) or compiled from the LaTeX with pdflatex (--compile). Without --in the
built-in sample is rendered.`,
	RunE: runRender,
}

var (
	renderInput      string
	renderTemplate   string
	renderOutDir     string
	renderPDF        bool
	renderCompile    bool
	renderPDFTimeout time.Duration
	renderVerbose    bool
)

// pdfSource selects how, if at all, a PDF is produced next to the HTML and
// LaTeX documents.
type pdfSource int

const (
	pdfNone pdfSource = iota
	pdfFromHTML
	pdfFromLaTeX
)

// Swapped out in tests.
var (
	pdfPrinter    = rendering.PDF
	latexCompiler = rendering.CompileLaTeX
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to profile JSON or YAML file (default: built-in sample)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", types.DefaultTemplate, "Template choice: professional or modern")
	renderCmd.Flags().StringVarP(&renderOutDir, "out", "o", ".", "Output directory")
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "Also print a PDF (requires Chrome/Chromium)")
	renderCmd.Flags().BoolVar(&renderCompile, "compile", false, "Also compile the LaTeX to PDF (requires pdflatex)")
	renderCmd.Flags().DurationVar(&renderPDFTimeout, "pdf-timeout", rendering.DefaultPDFTimeout, "PDF export timeout")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a summary of the resume")
	renderCmd.MarkFlagsMutuallyExclusive("pdf", "compile")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	profile := sample.Default()
	if renderInput != "" {
		loaded, err := sample.Load(renderInput)
		if err != nil {
			return err
		}
		profile = loaded
	}

	resume := formdata.Build(profile, renderTemplate)

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if renderVerbose {
		printer.PrintResume(resume)
	}

	source := pdfNone
	switch {
	case renderPDF:
		source = pdfFromHTML
	case renderCompile:
		source = pdfFromLaTeX
	}

	paths, err := writeDocuments(cmd.Context(), resume, renderOutDir, source, renderPDFTimeout)
	if err != nil {
		return err
	}

	if renderVerbose {
		printer.PrintWrittenFiles(paths)
	} else {
		for _, p := range paths {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	}
	return nil
}

// writeDocuments renders resume and writes resume_<choice>.{html,tex[,pdf]}
// into dir. It returns the written paths.
func writeDocuments(ctx context.Context, resume *types.Resume, dir string, source pdfSource, pdfTimeout time.Duration) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	docs, err := rendering.NewRenderer().Render(ctx, resume, resume.TemplateChoice)
	if err != nil {
		return nil, fmt.Errorf("failed to render resume: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		ext  string
		data []byte
	}{
		{ext: "html", data: []byte(docs.HTML)},
		{ext: "tex", data: []byte(docs.LaTeX)},
	}
	if source != pdfNone {
		var pdf []byte
		if source == pdfFromLaTeX {
			pdf, err = latexCompiler(ctx, docs.LaTeX, pdfTimeout)
		} else {
			pdf, err = pdfPrinter(ctx, docs.HTML, pdfTimeout)
		}
		if err != nil {
			return nil, err
		}
		files = append(files, struct {
			ext  string
			data []byte
		}{ext: "pdf", data: pdf})
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, fmt.Sprintf("resume_%s.%s", docs.Template, f.ext))
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write output file: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
