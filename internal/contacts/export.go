package contacts

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/referral-matcher/internal/types"
)

// exportHeader mirrors the input columns plus the score breakdown so an
// exported file can be re-inspected in a spreadsheet.
var exportHeader = []string{
	colFirstName, colLastName, colPosition, colCompany, colEmail, colLinkedIn,
	colLocationRaw, colEmployeeConnection,
	"match_score", "skill_score", "role_score", "company_score",
	"industry_score", "seniority_bonus", "location_score",
	"location_match_type", "skill_matches", "matched_role",
}

// ExportCandidatesCSV writes ranked candidates to path, creating or
// truncating the file.
func ExportCandidatesCSV(path string, candidates []types.RankedCandidate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCandidatesCSV(f, candidates); err != nil {
		return fmt.Errorf("failed to write export to %s: %w", path, err)
	}
	return nil
}

// WriteCandidatesCSV writes ranked candidates to w in the export format.
func WriteCandidatesCSV(w io.Writer, candidates []types.RankedCandidate) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, candidate := range candidates {
		contact, score := candidate.Contact, candidate.Score
		row := []string{
			contact.FirstName, contact.LastName, contact.Position, contact.Company,
			contact.Email, contact.LinkedIn, contact.LocationRaw, contact.EmployeeConnection,
			formatScore(score.TotalScore), formatScore(score.SkillScore),
			formatScore(score.RoleScore), formatScore(score.CompanyScore),
			formatScore(score.IndustryScore), formatScore(score.SeniorityBonus),
			formatScore(score.LocationScore),
			score.LocationMatchType, strings.Join(score.SkillMatches, "; "), score.MatchedRole,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
