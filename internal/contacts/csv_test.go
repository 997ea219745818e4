package contacts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/referral-matcher/internal/types"
)

func TestReadCSV_FullRow(t *testing.T) {
	in := strings.NewReader(
		`First Name,Last Name,Position,Company,Email,LinkedIn,skills_tag,seniority_tag,function_tag,company_industry_tags,location_raw,employee_connection
Ada,Lovelace,Software Engineer,Acme,ada@example.com,linkedin.com/in/ada,"[""go"",""sql""]",senior,engineering,"[""saas"",""tech""]","Austin, Texas",1st
`)

	contacts, err := ReadCSV(in)
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	c := contacts[0]
	assert.Equal(t, "Ada Lovelace", c.FullName())
	assert.Equal(t, "Software Engineer", c.Position)
	assert.Equal(t, []string{"go", "sql"}, c.Skills)
	assert.Equal(t, []string{"saas", "tech"}, c.IndustryTags)
	assert.Equal(t, "Austin, Texas", c.LocationRaw)
	assert.Equal(t, "1st", c.EmployeeConnection)
}

func TestReadCSV_ReorderedHeader(t *testing.T) {
	in := strings.NewReader(
		`Company,Position,Last Name,First Name
Acme,Engineer,Turing,Alan
`)

	contacts, err := ReadCSV(in)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Alan Turing", contacts[0].FullName())
	assert.Equal(t, "Acme", contacts[0].Company)
}

func TestReadCSV_MissingRequiredColumn(t *testing.T) {
	in := strings.NewReader("First Name,Last Name,Position\nAda,Lovelace,Engineer\n")

	_, err := ReadCSV(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Company")
}

func TestReadCSV_MalformedTagListDegrades(t *testing.T) {
	in := strings.NewReader(
		`First Name,Last Name,Position,Company,skills_tag
Ada,Lovelace,Engineer,Acme,not a list
Alan,Turing,Engineer,Acme,"['python', 'go']"
Grace,Hopper,Engineer,Acme,nan
`)

	contacts, err := ReadCSV(in)
	require.NoError(t, err)
	require.Len(t, contacts, 3)

	// Unparseable cell degrades, contact survives.
	assert.Nil(t, contacts[0].Skills)
	// Python-style single-quoted lists are accepted.
	assert.Equal(t, []string{"python", "go"}, contacts[1].Skills)
	// pandas NaN spelling degrades.
	assert.Nil(t, contacts[2].Skills)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestExportCandidatesCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	candidates := []types.RankedCandidate{
		{
			Contact: types.Contact{FirstName: "Ada", LastName: "Lovelace", Position: "SDR", Company: "Acme"},
			Score: types.ScoreResult{
				TotalScore:        13.5,
				SkillScore:        3,
				RoleScore:         8,
				SkillMatches:      []string{"cold calling", "salesforce"},
				LocationMatchType: "city_in_state",
			},
		},
	}

	require.NoError(t, ExportCandidatesCSV(path, candidates))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "match_score")
	assert.Contains(t, out, "Ada,Lovelace,SDR,Acme")
	assert.Contains(t, out, "13.50")
	assert.Contains(t, out, "cold calling; salesforce")
	assert.Contains(t, out, "city_in_state")
}

func TestWriteCandidatesCSV_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCandidatesCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "First Name")
}
