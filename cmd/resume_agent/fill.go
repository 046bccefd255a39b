package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/formsync"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/jonathan/resume-builder/internal/web"
	"github.com/spf13/cobra"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill an HTML resume form from a profile file",
	Long: `Load a profile into an HTML form the same way the web form's Load Sample Data
button does: scalar fields are set and each repeatable section is rebuilt from its
template entry. Without --form the built-in form page is used; without --in the
built-in sample is used. Controls named with --action are applied afterwards.`,
	RunE: runFill,
}

var (
	fillInput   string
	fillForm    string
	fillOutput  string
	fillActions []string
	fillVerbose bool
)

func init() {
	fillCmd.Flags().StringVarP(&fillInput, "in", "i", "", "Path to profile JSON or YAML file (default: built-in sample)")
	fillCmd.Flags().StringVarP(&fillForm, "form", "f", "", "Path to HTML form (default: built-in form page)")
	fillCmd.Flags().StringVarP(&fillOutput, "out", "o", "", "Output HTML file (default: stdout)")
	fillCmd.Flags().StringSliceVarP(&fillActions, "action", "a", nil, "Form controls to apply after filling, e.g. add:education or remove:projects:0")
	fillCmd.Flags().BoolVarP(&fillVerbose, "verbose", "v", false, "Print entry counts per section to stderr")
	rootCmd.AddCommand(fillCmd)
}

func runFill(cmd *cobra.Command, _ []string) error {
	profile := sample.Default()
	if fillInput != "" {
		loaded, err := sample.Load(fillInput)
		if err != nil {
			return err
		}
		profile = loaded
	}

	var form *formsync.Form
	var err error
	if fillForm == "" {
		form, err = web.NewIndexForm(profile)
	} else {
		var page []byte
		page, err = os.ReadFile(fillForm)
		if err != nil {
			return fmt.Errorf("failed to read form file: %w", err)
		}
		form, err = formsync.Parse(bytes.NewReader(page), formsync.WithSample(profile))
	}
	if err != nil {
		return fmt.Errorf("failed to parse form: %w", err)
	}

	form.Fill(profile)
	for _, action := range fillActions {
		if !form.Apply(action) {
			return fmt.Errorf("form action %q did not match any control", action)
		}
	}
	form.IndexControls()

	if fillVerbose {
		counts := map[string]int{}
		order := []string{}
		for _, section := range formsync.Sections() {
			counts[string(section)] = form.Entries(string(section)).Length()
			order = append(order, string(section))
		}
		observability.NewPrinter(cmd.ErrOrStderr()).PrintSectionCounts(counts, order)
	}

	html, err := form.HTML()
	if err != nil {
		return fmt.Errorf("failed to serialize form: %w", err)
	}

	if fillOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(fillOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
