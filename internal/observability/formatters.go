// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/referral-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of the extracted job
// requirements, including the low-confidence warning and suggested roles.
func (p *Printer) PrintRequirements(reqs *types.JobRequirements) {
	if reqs == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:       %s (confidence %.2f)\n", orNone(reqs.Role), reqs.RoleConfidence))
	if reqs.ExplicitRole != "" {
		sb.WriteString(fmt.Sprintf("Job title:  %s (explicit)\n", reqs.ExplicitRole))
	}
	if len(reqs.SuggestedRoles) > 0 {
		sb.WriteString(fmt.Sprintf("Suggested:  %s\n", strings.Join(reqs.SuggestedRoles, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Company:    %s\n", orNone(reqs.Company)))
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", orNone(reqs.Seniority)))
	sb.WriteString(fmt.Sprintf("Skills:     %d found\n", len(reqs.Skills)))

	shown := reqs.Skills
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for _, skill := range shown {
		sb.WriteString(fmt.Sprintf("  - %s\n", skill))
	}
	if len(reqs.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(reqs.Skills)-maxItemsToShow))
	}

	p.printBox("Job Requirements", strings.TrimRight(sb.String(), "\n"))
}

// PrintCandidates outputs the ranked candidate list with per-component score
// breakdowns.
func (p *Printer) PrintCandidates(candidates []types.RankedCandidate) {
	var sb strings.Builder

	if len(candidates) == 0 {
		sb.WriteString("No candidates met the quality thresholds.")
		p.printBox("Ranked Candidates", sb.String())
		return
	}

	for i, candidate := range candidates {
		score := candidate.Score
		sb.WriteString(fmt.Sprintf("%d. %s (%s at %s)\n",
			i+1, candidate.Contact.FullName(), orNone(candidate.Contact.Position), orNone(candidate.Contact.Company)))
		sb.WriteString(fmt.Sprintf("   total %.2f | skills %.1f role %.1f company %.1f\n",
			score.TotalScore, score.SkillScore, score.RoleScore, score.CompanyScore))
		sb.WriteString(fmt.Sprintf("   industry %.1f seniority %.1f boost %.1f\n",
			score.IndustryScore, score.SeniorityBonus, score.TaggedBoost))
		if score.LocationMatchType != "" {
			sb.WriteString(fmt.Sprintf("   location: %s (%.1f)\n", score.LocationMatchType, score.LocationScore))
		}
		if len(score.SkillMatches) > 0 {
			matches := score.SkillMatches
			if len(matches) > maxItemsToShow {
				matches = matches[:maxItemsToShow]
			}
			sb.WriteString(fmt.Sprintf("   matched skills: %s\n", strings.Join(matches, ", ")))
		}
	}

	p.printBox("Ranked Candidates", strings.TrimRight(sb.String(), "\n"))
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
