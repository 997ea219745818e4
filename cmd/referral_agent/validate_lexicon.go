package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/referral-matcher/internal/lexicon"
)

var validateLexiconCommand = &cobra.Command{
	Use:   "validate-lexicon",
	Short: "Validate the reference tables without running a match",
	Long:  "Loads the four lexicon tables, validates each against its JSON schema, and reports basic statistics.",
	RunE:  runValidateLexiconCmd,
}

var validateLexiconDir string

func init() {
	validateLexiconCommand.Flags().StringVarP(&validateLexiconDir, "lexicon-dir", "l", "lexicon", "Directory holding the reference tables")

	rootCmd.AddCommand(validateLexiconCommand)
}

func runValidateLexiconCmd(_ *cobra.Command, _ []string) error {
	lex, err := lexicon.Load(validateLexiconDir)
	if err != nil {
		return fmt.Errorf("lexicon validation failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Lexicon OK: %d skills, %d companies, %d title aliases, %d countries\n",
		len(lex.AllSkills()), len(lex.Companies()), len(lex.TitleAliases()), len(lex.Locations().Countries))
	return nil
}
