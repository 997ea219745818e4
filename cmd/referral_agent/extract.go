package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/referral-matcher/internal/extraction"
	"github.com/jonathan/referral-matcher/internal/lexicon"
	"github.com/jonathan/referral-matcher/internal/observability"
)

var extractCommand = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured requirements from a job description",
	Long:  "Parses a job description text file and prints the detected role, confidence, skills, hiring company, and seniority as JSON.",
	RunE:  runExtractCmd,
}

var (
	extractJob        string
	extractJobTitle   string
	extractLexiconDir string
	extractVerbose    bool
)

func init() {
	extractCommand.Flags().StringVarP(&extractJob, "job", "j", "", "Path to job description text file (required)")
	extractCommand.Flags().StringVar(&extractJobTitle, "job-title", "", "Explicit job title, overrides auto-detection")
	extractCommand.Flags().StringVarP(&extractLexiconDir, "lexicon-dir", "l", "lexicon", "Directory holding the reference tables")
	extractCommand.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a human-readable summary as well")

	_ = extractCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(extractCommand)
}

func runExtractCmd(_ *cobra.Command, _ []string) error {
	jobText, err := os.ReadFile(extractJob)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	lex, err := lexicon.Load(extractLexiconDir)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}

	reqs := extraction.New(lex).Extract(string(jobText), extractJobTitle)

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintRequirements(reqs)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reqs)
}
