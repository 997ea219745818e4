// Package main provides the entry point for the referral matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "referral_agent",
	Short: "Contact-to-job referral matching engine",
	Long:  "Referral agent extracts requirements from a job description and ranks a contact book by referral fit: skills, role, company affinity, industry, seniority, and location.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
