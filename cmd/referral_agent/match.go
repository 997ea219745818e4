package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/referral-matcher/internal/config"
	"github.com/jonathan/referral-matcher/internal/contacts"
	"github.com/jonathan/referral-matcher/internal/extraction"
	"github.com/jonathan/referral-matcher/internal/lexicon"
	"github.com/jonathan/referral-matcher/internal/location"
	"github.com/jonathan/referral-matcher/internal/observability"
	"github.com/jonathan/referral-matcher/internal/ranking"
	"github.com/jonathan/referral-matcher/internal/scoring"
	"github.com/jonathan/referral-matcher/internal/types"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Rank contacts against a job description",
	Long: `Runs the full matching pipeline: extracts requirements from the job description, scores every contact, applies role-specific quality gates, and prints the top candidates.

Contacts come from a CSV export or, with --db-url, from PostgreSQL. Configuration can be loaded from a JSON file using --config; command-line arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath          string
	matchJob                 string
	matchContacts            string
	matchLexiconDir          string
	matchJobTitle            string
	matchAlternativeTitles   []string
	matchJobLocation         string
	matchPreferredCompanies  []string
	matchPreferredIndustries []string
	matchTopN                int
	matchOut                 string
	matchVerbose             bool
	matchDatabaseURL         string
	matchSaveRun             bool
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCommand.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description text file")
	matchCommand.Flags().StringVarP(&matchContacts, "contacts", "c", "", "Path to contacts CSV (mutually exclusive with --db-url)")
	matchCommand.Flags().StringVarP(&matchLexiconDir, "lexicon-dir", "l", "lexicon", "Directory holding the reference tables")
	matchCommand.Flags().StringVar(&matchJobTitle, "job-title", "", "Explicit job title, overrides auto-detection")
	matchCommand.Flags().StringSliceVar(&matchAlternativeTitles, "alt-title", nil, "Acceptable alternative title (repeatable)")
	matchCommand.Flags().StringVar(&matchJobLocation, "job-location", "", "Job location, or 'remote'")
	matchCommand.Flags().StringSliceVar(&matchPreferredCompanies, "prefer-company", nil, "Company granted a preference bonus (repeatable)")
	matchCommand.Flags().StringSliceVar(&matchPreferredIndustries, "prefer-industry", nil, "Industry granted a preference bonus (repeatable)")
	matchCommand.Flags().IntVarP(&matchTopN, "top", "n", 0, "Number of candidates to return (default 10)")
	matchCommand.Flags().StringVarP(&matchOut, "out", "o", "", "Write ranked candidates to a CSV file")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed scoring breakdowns")

	matchCommand.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	matchCommand.Flags().BoolVar(&matchSaveRun, "save-run", false, "Persist the run and its candidates to the database")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if matchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if matchVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", matchConfigPath)
		}
	}

	// CLI overrides: only apply flags that were explicitly set.
	if cmd.Flags().Changed("job") {
		cfg.Job = matchJob
	}
	if cmd.Flags().Changed("contacts") {
		cfg.Contacts = matchContacts
	}
	if cmd.Flags().Changed("lexicon-dir") || cfg.LexiconDir == "" {
		cfg.LexiconDir = matchLexiconDir
	}
	if cmd.Flags().Changed("job-title") {
		cfg.JobTitle = matchJobTitle
	}
	if cmd.Flags().Changed("alt-title") {
		cfg.AlternativeTitles = matchAlternativeTitles
	}
	if cmd.Flags().Changed("job-location") {
		cfg.JobLocation = matchJobLocation
	}
	if cmd.Flags().Changed("prefer-company") {
		cfg.PreferredCompanies = matchPreferredCompanies
	}
	if cmd.Flags().Changed("prefer-industry") {
		cfg.PreferredIndustries = matchPreferredIndustries
	}
	if cmd.Flags().Changed("top") {
		cfg.TopN = matchTopN
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = matchDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.Job == "" {
		return fmt.Errorf("--job is required (flag or config file)")
	}
	if cfg.Contacts == "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("either --contacts or --db-url is required")
	}

	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	lex, err := lexicon.Load(cfg.LexiconDir)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}

	// Contact source: CSV wins when both are configured.
	var book []types.Contact
	var store *contacts.Store
	if cfg.Contacts != "" {
		book, err = contacts.LoadCSV(cfg.Contacts)
		if err != nil {
			return err
		}
	} else {
		store, err = contacts.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()
		book, err = store.ListContacts(ctx)
		if err != nil {
			return err
		}
	}

	if matchVerbose {
		_, _ = fmt.Fprintf(os.Stdout, "Scoring %d contacts...\n", len(book))
	}

	pipeline := ranking.NewPipeline(
		extraction.New(lex),
		scoring.New(lex, location.New(lex.Locations()), nil),
	)

	result, err := pipeline.Run(ctx, ranking.Request{
		JobText:             string(jobText),
		Contacts:            book,
		JobTitle:            cfg.JobTitle,
		AlternativeTitles:   cfg.AlternativeTitles,
		PreferredCompanies:  cfg.PreferredCompanies,
		PreferredIndustries: cfg.PreferredIndustries,
		JobLocation:         cfg.JobLocation,
		TopN:                cfg.TopN,
	})
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if matchVerbose {
		printer.PrintRequirements(result.Requirements)
	}
	printer.PrintCandidates(result.Candidates)

	if matchOut != "" {
		if err := contacts.ExportCandidatesCSV(matchOut, result.Candidates); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %d candidates to %s\n", len(result.Candidates), matchOut)
	}

	if matchSaveRun {
		if store == nil {
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("--save-run requires --db-url")
			}
			store, err = contacts.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer store.Close()
		}
		if err := store.SaveRun(ctx, result.RunID, result.Requirements, result.Candidates); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Saved run %s\n", result.RunID)
	}

	if matchVerbose {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}

	return nil
}
