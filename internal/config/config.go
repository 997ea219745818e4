// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Paths
	Job        string `json:"job,omitempty"`         // Path to job description text file
	Contacts   string `json:"contacts,omitempty"`    // Path to contacts CSV
	LexiconDir string `json:"lexicon_dir,omitempty"` // Directory holding the reference tables

	// Matching
	JobTitle            string   `json:"job_title,omitempty"`            // Explicit job title, overrides detection
	AlternativeTitles   []string `json:"alternative_titles,omitempty"`   // Acceptable secondary titles
	JobLocation         string   `json:"job_location,omitempty"`         // Job location, or "remote"
	PreferredCompanies  []string `json:"preferred_companies,omitempty"`  // Companies granted a preference bonus
	PreferredIndustries []string `json:"preferred_industries,omitempty"` // Industries granted a preference bonus
	TopN                int      `json:"top_n,omitempty"`                // Number of candidates to return

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed scoring breakdowns
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required-field
// checks happen after merging, in CLI flag validation.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Contacts != "" {
		if _, err := os.Stat(c.Contacts); os.IsNotExist(err) {
			return fmt.Errorf("config error: contacts file not found: %s", c.Contacts)
		}
	}
	if c.LexiconDir != "" {
		if _, err := os.Stat(c.LexiconDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon directory not found: %s", c.LexiconDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Contacts == "" {
		result.Contacts = defaults.Contacts
	}
	if result.LexiconDir == "" {
		result.LexiconDir = defaults.LexiconDir
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.JobLocation == "" {
		result.JobLocation = defaults.JobLocation
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if len(result.AlternativeTitles) == 0 {
		result.AlternativeTitles = defaults.AlternativeTitles
	}
	if len(result.PreferredCompanies) == 0 {
		result.PreferredCompanies = defaults.PreferredCompanies
	}
	if len(result.PreferredIndustries) == 0 {
		result.PreferredIndustries = defaults.PreferredIndustries
	}

	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}

	// Bool fields cannot distinguish unset from false, so they don't merge;
	// CLI flags always win for bools.

	return result
}
