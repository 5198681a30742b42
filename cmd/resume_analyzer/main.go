// Package main provides the entry point for the resume analyzer CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume analysis HTTP API and CLI",
	Long:  "Resume Analyzer extracts plain text from uploaded resumes (PDF, DOCX, TXT) and produces word-frequency statistics, skill matches, contact info, a job-description match score, and a best-effort employment timeline.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
