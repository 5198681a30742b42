package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/spf13/cobra"
)

var (
	analyzeJobPath string
	analyzeJobURL  string
	analyzeJSON    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume file",
	Long: `Analyze a resume file (PDF, DOCX, or TXT) and print the structured result.
An optional job description (from a file or a URL) enables skills-match scoring.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw JSON result")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeJobPath != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	text, err := extract.File(args[0])
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(cmd.Context())
	if err != nil {
		return err
	}

	result := analysis.Analyze(text, jobDescription, time.Now())

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	observability.NewPrinter(os.Stdout).PrintAnalysis(result)
	return nil
}

func loadJobDescription(ctx context.Context) (string, error) {
	switch {
	case analyzeJobPath != "":
		data, err := os.ReadFile(analyzeJobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	case analyzeJobURL != "":
		text, err := fetch.JobDescription(ctx, analyzeJobURL, fetch.DefaultTimeout)
		if err != nil {
			return "", err
		}
		return text, nil
	default:
		return "", nil
	}
}
