// Package contacts loads contact records from CSV exports and PostgreSQL.
package contacts

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/referral-matcher/internal/types"
)

// CSV column names as produced by the LinkedIn export enrichment step.
const (
	colFirstName          = "First Name"
	colLastName           = "Last Name"
	colPosition           = "Position"
	colCompany            = "Company"
	colEmail              = "Email"
	colLinkedIn           = "LinkedIn"
	colSkillsTag          = "skills_tag"
	colSeniorityTag       = "seniority_tag"
	colFunctionTag        = "function_tag"
	colIndustryTags       = "company_industry_tags"
	colLocationRaw        = "location_raw"
	colEmployeeConnection = "employee_connection"
)

// requiredColumns must be present in the header for a file to be usable at
// all. Everything else degrades to empty per contact.
var requiredColumns = []string{colFirstName, colLastName, colPosition, colCompany}

// LoadCSV reads a contacts CSV from path. Malformed tag lists in individual
// rows degrade to empty slices rather than failing the whole file; only an
// unreadable file or a header missing required columns is an error.
func LoadCSV(path string) ([]types.Contact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts file: %w", err)
	}
	defer f.Close()

	contacts, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts from %s: %w", path, err)
	}
	return contacts, nil
}

// ReadCSV decodes contact rows from r. Column order is taken from the header
// row, so reordered exports keep working.
func ReadCSV(r io.Reader) ([]types.Contact, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var contacts []types.Contact
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		contacts = append(contacts, types.Contact{
			FirstName:          field(row, colFirstName),
			LastName:           field(row, colLastName),
			Position:           field(row, colPosition),
			Company:            field(row, colCompany),
			Email:              field(row, colEmail),
			LinkedIn:           field(row, colLinkedIn),
			Skills:             decodeTagList(field(row, colSkillsTag)),
			SeniorityTag:       field(row, colSeniorityTag),
			FunctionTag:        field(row, colFunctionTag),
			IndustryTags:       decodeTagList(field(row, colIndustryTags)),
			LocationRaw:        field(row, colLocationRaw),
			EmployeeConnection: field(row, colEmployeeConnection),
		})
	}
	return contacts, nil
}

// decodeTagList parses a serialized tag list cell. Cells come in two
// dialects: JSON arrays and Python-style single-quoted list literals from the
// upstream enrichment scripts. Unparseable cells degrade to nil.
func decodeTagList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" || strings.EqualFold(raw, "nan") {
		return nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err == nil {
		return cleanTags(tags)
	}

	// Second chance for single-quoted list literals.
	requoted := strings.ReplaceAll(raw, "'", `"`)
	if err := json.Unmarshal([]byte(requoted), &tags); err == nil {
		return cleanTags(tags)
	}

	return nil
}

func cleanTags(tags []string) []string {
	cleaned := tags[:0]
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}
