package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample profile",
	Long:  "Print the sample profile used by Load Sample Data as JSON or YAML, ready to edit and pass to render or fill.",
	RunE:  runSample,
}

var (
	sampleFormat string
	sampleOutput string
)

func init() {
	sampleCmd.Flags().StringVar(&sampleFormat, "format", sample.FormatJSON, "Output format: json or yaml")
	sampleCmd.Flags().StringVarP(&sampleOutput, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	data, err := sample.Marshal(sample.Default(), sampleFormat)
	if err != nil {
		return err
	}

	if sampleOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(sampleOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
