// Package main provides the resume_agent command line: the resume builder web
// server plus offline render, fill, sample and prompt commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_agent",
	Short: "Resume builder server and tools",
	Long: "Resume builder collects resume details through a web form, keeps the form's repeatable " +
		"sections in sync on the server, and renders the result as HTML, LaTeX and PDF.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
