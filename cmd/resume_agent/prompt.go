package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/jonathan/resume-builder/internal/formdata"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Build a resume interactively in the terminal",
	Long: `Ask for contact details, education, experience, projects and skills, then write
resume_<template>.html and resume_<template>.tex. Name, phone, email, at least one
education entry, at least one experience entry and at least one skill are required.`,
	RunE: runPrompt,
}

var (
	promptTemplate string
	promptOutDir   string
	promptPDF      bool
)

// Test hooks.
var (
	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	runForm = func(ctx context.Context, f *huh.Form) error {
		return f.RunWithContext(ctx)
	}
)

var errNotInteractive = errors.New("prompt requires an interactive terminal; use render with a profile file instead")

func init() {
	promptCmd.Flags().StringVarP(&promptTemplate, "template", "t", types.DefaultTemplate, "Template choice: professional or modern")
	promptCmd.Flags().StringVarP(&promptOutDir, "out", "o", ".", "Output directory")
	promptCmd.Flags().BoolVar(&promptPDF, "pdf", false, "Also print a PDF (requires Chrome/Chromium)")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	if !isInteractive() {
		return errNotInteractive
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	profile, err := collectProfile(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
		return nil
	}
	if err != nil {
		return err
	}

	resume := formdata.Build(profile, promptTemplate)
	source := pdfNone
	if promptPDF {
		source = pdfFromHTML
	}
	paths, err := writeDocuments(ctx, resume, promptOutDir, source, rendering.DefaultPDFTimeout)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintWrittenFiles(paths)
	return nil
}

// collectProfile walks through every section. Each repeatable section keeps
// asking for entries until its first field is left blank.
func collectProfile(ctx context.Context) (*types.Profile, error) {
	p := &types.Profile{Skills: &types.Skills{}}

	contact := huh.NewForm(
		huh.NewGroup(
			requiredInput("Full Name", &p.Name),
			huh.NewInput().Title("Location").Value(&p.Location),
			requiredInput("Phone Number", &p.Phone),
			requiredInput("Email Address", &p.Email),
			huh.NewInput().Title("LinkedIn Profile URL").Value(&p.LinkedIn),
			huh.NewInput().Title("GitHub Profile URL").Value(&p.GitHub),
		).Title("Contact"),
	)
	if err := runForm(ctx, promptTheme(contact)); err != nil {
		return nil, err
	}

	for {
		var edu types.Education
		more, err := collectEntry(ctx, "Education", "Institution Name (blank to finish)", &edu.Institution,
			huh.NewInput().Title("Location").Value(&edu.Location),
			huh.NewInput().Title("Degree").Value(&edu.Degree),
			huh.NewInput().Title("Dates").Placeholder("2018 - 2022").Value(&edu.Dates),
			huh.NewInput().Title("GPA").Value(&edu.GPA),
		)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		p.Education = append(p.Education, edu)
	}

	for {
		var exp types.Experience
		more, err := collectEntry(ctx, "Experience", "Job Role (blank to finish)", &exp.Role,
			huh.NewInput().Title("Company Name").Value(&exp.Company),
			huh.NewInput().Title("Location").Value(&exp.Location),
			huh.NewInput().Title("Years").Placeholder("2020 - 2024").Value(&exp.Years),
			huh.NewText().Title("Details (one bullet per line)").Value(&exp.Details),
		)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		p.Experience = append(p.Experience, exp)
	}

	for {
		var proj types.Project
		more, err := collectEntry(ctx, "Projects (optional)", "Project Name (blank to finish)", &proj.Name,
			huh.NewInput().Title("Technologies Used").Value(&proj.Technologies),
			huh.NewInput().Title("Dates").Value(&proj.Dates),
			huh.NewText().Title("Project Summary").Value(&proj.Summary),
		)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		p.Projects = append(p.Projects, proj)
	}

	skills := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Languages (comma separated)").Value(&p.Skills.Languages),
			huh.NewInput().Title("Software (comma separated)").Value(&p.Skills.Software),
		).Title("Skills"),
	)
	if err := runForm(ctx, promptTheme(skills)); err != nil {
		return nil, err
	}

	if err := validateCollected(p); err != nil {
		return nil, err
	}
	return p, nil
}

// collectEntry asks for the key field of one entry and, when it is filled
// in, the remaining fields. It reports whether an entry was collected.
func collectEntry(ctx context.Context, section, keyTitle string, key *string, rest ...huh.Field) (bool, error) {
	first := huh.NewForm(huh.NewGroup(huh.NewInput().Title(keyTitle).Value(key)).Title(section))
	if err := runForm(ctx, promptTheme(first)); err != nil {
		return false, err
	}
	if strings.TrimSpace(*key) == "" {
		return false, nil
	}
	if len(rest) == 0 {
		return true, nil
	}
	if err := runForm(ctx, promptTheme(huh.NewForm(huh.NewGroup(rest...).Title(section)))); err != nil {
		return false, err
	}
	return true, nil
}

func requiredInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", title)
			}
			return nil
		})
}

func promptTheme(f *huh.Form) *huh.Form {
	return f.WithTheme(huh.ThemeBase()).WithShowHelp(false)
}

// validateCollected enforces the sections a terminal-built resume must have.
func validateCollected(p *types.Profile) error {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Phone) == "" {
		missing = append(missing, "phone number")
	}
	if strings.TrimSpace(p.Email) == "" {
		missing = append(missing, "email address")
	}

	r := formdata.Build(p, "")
	if len(r.Education) == 0 {
		missing = append(missing, "education")
	}
	if len(r.Experience) == 0 {
		missing = append(missing, "experience")
	}
	if len(r.Skills) == 0 {
		missing = append(missing, "skills")
	}

	if len(missing) > 0 {
		return fmt.Errorf("resume is missing required sections: %s", strings.Join(missing, ", "))
	}
	return nil
}
