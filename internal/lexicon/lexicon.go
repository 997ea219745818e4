// Package lexicon loads and exposes the immutable reference tables all
// scoring depends on: role skill vocabularies, title aliases, company
// industry tags, and the location hierarchy.
package lexicon

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/referral-matcher/internal/schemas"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// File names of the four reference tables inside the lexicon directory.
const (
	RoleEnrichmentFile      = "role_enrichment.json"
	TitleAliasesFile        = "title_aliases.json"
	CompanyIndustryTagsFile = "company_industry_tags.json"
	LocationHierarchyFile   = "location_hierarchy.json"
)

// anyCompanyPrefix marks role enrichment entries that apply regardless of company.
const anyCompanyPrefix = "any:"

// RoleEntry holds the skill and platform vocabulary for one role key.
type RoleEntry struct {
	Skills    []string `json:"skills"`
	Platforms []string `json:"platforms"`
}

// LocationData is the three-level country/state/city structure plus aliases,
// consumed by the location package.
type LocationData struct {
	Countries []string            `json:"countries" validate:"required,min=1"`
	States    map[string][]string `json:"states"`
	Cities    map[string][]string `json:"cities"`
	Aliases   map[string][]string `json:"aliases"`
}

// Lexicon is an immutable snapshot of the reference tables, safe to share
// across concurrent ranking requests without locking.
type Lexicon struct {
	roles        map[string]RoleEntry
	titleAliases map[string]string
	companyTags  map[string][]string
	locations    LocationData
	allSkills    []string
	companies    []string
}

var validate = validator.New()

// Load reads the four reference tables from dir. Any missing or malformed
// table is a fatal error; there is no partial or degraded mode.
func Load(dir string) (*Lexicon, error) {
	var roles map[string]RoleEntry
	if err := loadTable(dir, RoleEnrichmentFile, "role_enrichment.schema.json", &roles); err != nil {
		return nil, err
	}

	var aliases map[string]string
	if err := loadTable(dir, TitleAliasesFile, "title_aliases.schema.json", &aliases); err != nil {
		return nil, err
	}

	var companyTags map[string][]string
	if err := loadTable(dir, CompanyIndustryTagsFile, "company_industry_tags.schema.json", &companyTags); err != nil {
		return nil, err
	}

	var locations LocationData
	if err := loadTable(dir, LocationHierarchyFile, "location_hierarchy.schema.json", &locations); err != nil {
		return nil, err
	}
	if err := validate.Struct(&locations); err != nil {
		return nil, &TableError{Table: LocationHierarchyFile, Path: filepath.Join(dir, LocationHierarchyFile), Cause: err}
	}

	return New(roles, aliases, companyTags, locations), nil
}

// New builds a Lexicon from already-decoded tables. Keys are normalized to
// lower case; the master skill list is the sorted union of every role entry.
func New(roles map[string]RoleEntry, titleAliases map[string]string, companyTags map[string][]string, locations LocationData) *Lexicon {
	lex := &Lexicon{
		roles:        make(map[string]RoleEntry, len(roles)),
		titleAliases: make(map[string]string, len(titleAliases)),
		companyTags:  make(map[string][]string, len(companyTags)),
		locations:    locations,
	}

	skillSet := make(map[string]bool)
	for key, entry := range roles {
		lex.roles[strings.ToLower(key)] = entry
		for _, skill := range entry.Skills {
			skillSet[skill] = true
		}
	}
	lex.allSkills = make([]string, 0, len(skillSet))
	for skill := range skillSet {
		lex.allSkills = append(lex.allSkills, skill)
	}
	sort.Strings(lex.allSkills)

	for alias, canonical := range titleAliases {
		lex.titleAliases[strings.ToLower(strings.TrimSpace(alias))] = strings.ToLower(strings.TrimSpace(canonical))
	}

	for company, tags := range companyTags {
		lex.companyTags[NormalizeCompany(company)] = tags
	}
	lex.companies = make([]string, 0, len(lex.companyTags))
	for company := range lex.companyTags {
		lex.companies = append(lex.companies, company)
	}
	sort.Strings(lex.companies)

	return lex
}

// loadTable reads one JSON table, validates it against its embedded schema,
// and decodes it into out.
func loadTable(dir, name, schemaName string, out any) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &TableError{Table: name, Path: path, Cause: fmt.Errorf("%w: %v", ErrMissingTable, err)}
		}
		return &TableError{Table: name, Path: path, Cause: err}
	}

	schemaContent, err := schemaFS.ReadFile("schemas/" + schemaName)
	if err != nil {
		return &TableError{Table: name, Path: path, Cause: fmt.Errorf("embedded schema %s: %w", schemaName, err)}
	}

	if err := schemas.ValidateJSONString(schemaName, string(schemaContent), string(data)); err != nil {
		return &TableError{Table: name, Path: path, Cause: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &TableError{Table: name, Path: path, Cause: err}
	}

	return nil
}

// RoleEntry returns the enrichment entry for a company/role pair, preferring
// the company-specific entry over the company-agnostic "any:" entry.
func (l *Lexicon) RoleEntry(company, role string) (RoleEntry, bool) {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return RoleEntry{}, false
	}
	if company != "" {
		if entry, ok := l.roles[NormalizeCompany(company)+":"+role]; ok {
			return entry, true
		}
	}
	entry, ok := l.roles[anyCompanyPrefix+role]
	return entry, ok
}

// RoleSkills returns the company-agnostic skill vocabulary for a role, or nil
// when the role has no enrichment entry.
func (l *Lexicon) RoleSkills(role string) []string {
	entry, ok := l.RoleEntry("", role)
	if !ok {
		return nil
	}
	return entry.Skills
}

// CanonicalRole maps a raw title string through the alias table. The second
// return value reports whether an alias entry existed.
func (l *Lexicon) CanonicalRole(title string) (string, bool) {
	canonical, ok := l.titleAliases[strings.ToLower(strings.TrimSpace(title))]
	return canonical, ok
}

// TitleAliases exposes the alias table for substring scanning during role
// detection. Callers must not modify the returned map.
func (l *Lexicon) TitleAliases() map[string]string {
	return l.titleAliases
}

// CompanyTags returns the industry tags for a company name, normalizing the
// lookup key the same way the table keys were normalized.
func (l *Lexicon) CompanyTags(company string) []string {
	return l.companyTags[NormalizeCompany(company)]
}

// Companies returns the sorted list of known company names, used for hiring
// company detection in job text.
func (l *Lexicon) Companies() []string {
	return l.companies
}

// AllSkills returns the sorted union of every role's skill vocabulary.
func (l *Lexicon) AllSkills() []string {
	return l.allSkills
}

// Locations returns the location hierarchy tables.
func (l *Lexicon) Locations() LocationData {
	return l.locations
}

// companySuffixes are stripped before company names are compared.
var companySuffixes = []string{
	", inc.", ", inc", " inc.", " inc",
	", ltd.", ", ltd", " ltd.", " ltd",
	", llc", " llc", " corp.", " corp",
	" corporation", " gmbh", " plc", " co.",
}

// NormalizeCompany lower-cases, trims, and strips common legal suffixes from
// a company name so table lookups and equality checks line up.
func NormalizeCompany(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range companySuffixes {
		if strings.HasSuffix(normalized, suffix) {
			normalized = strings.TrimSpace(normalized[:len(normalized)-len(suffix)])
			break
		}
	}
	return normalized
}
