package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeValidLexicon(t *testing.T, dir string) {
	t.Helper()
	writeTable(t, dir, RoleEnrichmentFile, `{
		"any:sdr": {"skills": ["cold calling", "salesforce"], "platforms": ["outreach"]},
		"any:software engineer": {"skills": ["go", "python", "sql"], "platforms": []},
		"zendesk:sdr": {"skills": ["cold calling", "zendesk sell"], "platforms": []}
	}`)
	writeTable(t, dir, TitleAliasesFile, `{
		"sales development representative": "sdr",
		"sdr": "sdr",
		"software developer": "software engineer"
	}`)
	writeTable(t, dir, CompanyIndustryTagsFile, `{
		"Zendesk": ["saas", "support tech"],
		"Stripe, Inc.": ["fintech", "payment tech"]
	}`)
	writeTable(t, dir, LocationHierarchyFile, `{
		"countries": ["United States", "Ireland"],
		"states": {"United States": ["Texas", "California"]},
		"cities": {"Texas": ["Austin"], "Ireland": ["Dublin"]},
		"aliases": {"United States": ["USA", "US"]}
	}`)
}

func TestLoad_AllTables(t *testing.T) {
	dir := t.TempDir()
	writeValidLexicon(t, dir)

	lex, err := Load(dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"cold calling", "salesforce", "go", "python", "sql", "zendesk sell"}, lex.AllSkills())
	assert.Equal(t, []string{"stripe", "zendesk"}, lex.Companies())
	assert.Equal(t, []string{"United States", "Ireland"}, lex.Locations().Countries)
}

func TestLoad_MissingTable(t *testing.T) {
	dir := t.TempDir()
	writeValidLexicon(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, TitleAliasesFile)))

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTable)

	var tableErr *TableError
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, TitleAliasesFile, tableErr.Table)
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	writeValidLexicon(t, dir)
	// Skills must be an array of strings.
	writeTable(t, dir, RoleEnrichmentFile, `{"any:sdr": {"skills": "cold calling"}}`)

	_, err := Load(dir)
	require.Error(t, err)

	var tableErr *TableError
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, RoleEnrichmentFile, tableErr.Table)
	assert.False(t, errors.Is(err, ErrMissingTable))
}

func TestLoad_EmptyCountriesRejected(t *testing.T) {
	dir := t.TempDir()
	writeValidLexicon(t, dir)
	writeTable(t, dir, LocationHierarchyFile, `{"countries": [], "states": {}, "cities": {}, "aliases": {}}`)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestRoleEntry_CompanySpecificWins(t *testing.T) {
	dir := t.TempDir()
	writeValidLexicon(t, dir)
	lex, err := Load(dir)
	require.NoError(t, err)

	entry, ok := lex.RoleEntry("Zendesk", "sdr")
	require.True(t, ok)
	assert.Contains(t, entry.Skills, "zendesk sell")

	entry, ok = lex.RoleEntry("Acme", "sdr")
	require.True(t, ok)
	assert.Contains(t, entry.Skills, "salesforce")

	_, ok = lex.RoleEntry("Acme", "underwater basket weaver")
	assert.False(t, ok)
}

func TestCanonicalRole(t *testing.T) {
	dir := t.TempDir()
	writeValidLexicon(t, dir)
	lex, err := Load(dir)
	require.NoError(t, err)

	canonical, ok := lex.CanonicalRole("  Sales Development Representative ")
	require.True(t, ok)
	assert.Equal(t, "sdr", canonical)

	_, ok = lex.CanonicalRole("chief vibes officer")
	assert.False(t, ok)
}

func TestCompanyTags_NormalizedLookup(t *testing.T) {
	dir := t.TempDir()
	writeValidLexicon(t, dir)
	lex, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"fintech", "payment tech"}, lex.CompanyTags("Stripe"))
	assert.Equal(t, []string{"fintech", "payment tech"}, lex.CompanyTags("STRIPE, INC."))
	assert.Nil(t, lex.CompanyTags("Unknown Co"))
}

func TestNormalizeCompany(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Zendesk", "zendesk"},
		{"Stripe, Inc.", "stripe"},
		{"  Acme LLC ", "acme"},
		{"Widgets Corp", "widgets"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCompany(tt.in), "input %q", tt.in)
	}
}
