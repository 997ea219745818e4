// Package scoring computes the per-contact score breakdown against a job's
// requirements. Every component is kept separate in the result so a ranked
// list can explain itself.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/referral-matcher/internal/lexicon"
	"github.com/jonathan/referral-matcher/internal/location"
	"github.com/jonathan/referral-matcher/internal/types"
)

// BoostFunc returns an additive score boost for a contact by full name.
// Used to plug in externally-managed contact tags without coupling the
// scorer to their storage.
type BoostFunc func(fullName string) float64

// Options carries the per-request knobs that shape scoring beyond the
// extracted requirements.
type Options struct {
	// PreferredCompanies grant a flat bonus when the contact's employer
	// contains one of them as a substring.
	PreferredCompanies []string

	// PreferredIndustries grant a flat bonus when any of the contact's
	// industry tags matches one of them.
	PreferredIndustries []string

	// JobLocation is matched against each contact's location. The literal
	// value "remote" switches to remote-job handling.
	JobLocation string

	// AlternativeTitles are acceptable secondary titles, consulted only when
	// the primary title produced no role credit.
	AlternativeTitles []string
}

// Scorer scores contacts against job requirements using shared immutable
// lexicon and location tables. Safe for concurrent use.
type Scorer struct {
	lex       *lexicon.Lexicon
	locations *location.Hierarchy
	tagBoost  BoostFunc
}

// New returns a Scorer over the given tables. boost may be nil.
func New(lex *lexicon.Lexicon, locations *location.Hierarchy, boost BoostFunc) *Scorer {
	return &Scorer{lex: lex, locations: locations, tagBoost: boost}
}

// exactSDRTitles are title substrings accepted as a true SDR position. SDR
// searches are held to a stricter standard than other roles because adjacent
// sales titles inflate badly under generic fuzzy matching.
var exactSDRTitles = []string{
	"sales development representative",
	"sdr",
	"strategic sales development representative",
	"outbound sales development representative",
	"inbound sales development representative",
	"senior strategic sdr",
}

// managerIndicators mark titles too senior for an entry-level individual
// contributor search.
var managerIndicators = []string{
	"head of", "manager", "director", "vp", "vice president", "senior vice president",
	"regional vice president", "senior manager", "principal", "lead", "team lead",
	"head of sales development", "manager, sales development", "sales development manager",
	"manager, inside sales business development", "senior manager, sales",
}

// Score computes the full breakdown for one contact. It never returns an
// error: missing contact fields degrade individual components to zero.
func (s *Scorer) Score(contact types.Contact, reqs *types.JobRequirements, opts Options) types.ScoreResult {
	contactTitle := strings.ToLower(contact.Position)
	contactCompany := lexicon.NormalizeCompany(contact.Company)
	contactSeniority := strings.ToLower(contact.SeniorityTag)

	// Same-company contacts are excluded outright, before any component can
	// accumulate. Only applies when a hiring company was actually detected.
	if reqs.Company != "" && contactCompany != "" && contactCompany == lexicon.NormalizeCompany(reqs.Company) {
		return types.ScoreResult{
			CompanyScore: SameCompanySentinel,
			TotalScore:   SameCompanySentinel,
		}
	}

	result := types.ScoreResult{}

	skillMatches := intersectFold(contact.Skills, reqs.Skills)
	result.SkillMatches = skillMatches
	result.SkillScore = float64(len(skillMatches)) * skillMatchWeight

	matchedRole := s.matchTitleAlias(contactTitle)
	result.MatchedRole = matchedRole
	result.RoleScore = s.roleScore(contactTitle, matchedRole, reqs, opts)

	// Manager-level contacts are a poor fit for an entry-level SDR search no
	// matter how their title scored.
	if reqs.TargetRole() == "sdr" {
		for _, indicator := range managerIndicators {
			if strings.Contains(contactTitle, indicator) {
				result.RoleScore = managerPenalty
				break
			}
		}
	}

	if reqs.Company != "" && contactCompany != "" {
		result.CompanyScore = companySimilarityScore(lexicon.NormalizeCompany(reqs.Company), contactCompany)
	}

	industryMatches := intersectFold(contact.IndustryTags, reqs.CompanyTags)
	result.IndustryMatches = industryMatches
	result.IndustryScore = float64(len(industryMatches)) * industryMatchWeight
	if reqs.Company != "" && contactCompany != "" {
		result.IndustryScore += industryAffinityBonus(contact.IndustryTags, reqs.TargetRole())
	}

	if reqs.Seniority != "" && contactSeniority != "" && strings.Contains(contactSeniority, reqs.Seniority) {
		result.SeniorityBonus = seniorityBonusWeight
	}

	// Preference bonuses fold into their component so the total stays the sum
	// of the components.
	for _, preferred := range opts.PreferredCompanies {
		if preferred != "" && strings.Contains(contactCompany, strings.ToLower(preferred)) {
			result.CompanyScore += companyPreferenceBonus
			break
		}
	}
	for _, preferred := range opts.PreferredIndustries {
		if preferred != "" && tagListContains(contact.IndustryTags, preferred) {
			result.IndustryScore += industryPreferenceBonus
			break
		}
	}

	s.scoreLocation(&result, contact.LocationRaw, opts.JobLocation)

	if s.tagBoost != nil {
		result.TaggedBoost = s.tagBoost(contact.FullName())
	}

	// Location deliberately left out of the total. It is attached for display
	// and filtering only.
	result.TotalScore = result.SkillScore +
		result.RoleScore +
		result.CompanyScore +
		result.IndustryScore +
		result.SeniorityBonus +
		result.TaggedBoost

	return result
}

// roleScore evaluates the contact title against, in priority order, the
// explicit job title, the alternative titles, and finally the auto-detected
// role with related-role credit.
func (s *Scorer) roleScore(contactTitle, matchedRole string, reqs *types.JobRequirements, opts Options) float64 {
	if reqs.ExplicitRole != "" {
		if score := s.explicitTitleScore(contactTitle, matchedRole, reqs.ExplicitRole); score != 0 {
			return score
		}
	}

	// Alternative titles are a fallback, consulted only when the primary title
	// earned nothing.
	for _, alt := range opts.AlternativeTitles {
		altLower := strings.ToLower(strings.TrimSpace(alt))
		if altLower == "" || matchedRole == "" {
			continue
		}
		if matchedRole == altLower {
			return roleMatchWeight + 1.0
		}
		if fuzzyRoleMatch(matchedRole, altLower) {
			return roleMatchWeight * 0.6
		}
	}

	if reqs.ExplicitRole == "" && len(opts.AlternativeTitles) == 0 {
		// Auto-detected role path.
		switch {
		case matchedRole != "" && matchedRole == reqs.Role:
			return roleMatchWeight + exactRoleBonus
		case matchedRole != "" && fuzzyRoleMatch(matchedRole, reqs.Role):
			return roleMatchWeight + 1.0
		case matchedRole != "" && rolesRelated(reqs.Role, matchedRole):
			return roleMatchWeight * 0.4
		}
	}

	return 0
}

// explicitTitleScore grades the contact title against the canonicalized
// explicit job title. SDR searches are tiered strictly: that role historically
// attracted false positives from loosely related senior sales titles.
func (s *Scorer) explicitTitleScore(contactTitle, matchedRole, explicitRole string) float64 {
	if explicitRole == "sdr" {
		for _, exact := range exactSDRTitles {
			if strings.Contains(contactTitle, exact) {
				return roleMatchWeight + exactRoleBonus + 3.0
			}
		}
		if matchedRole == "sdr" {
			return roleMatchWeight + 1.0
		}
		if matchedRole != "" && fuzzyRoleMatch(matchedRole, explicitRole) {
			return roleMatchWeight * 0.5
		}
		return 0
	}
	if matchedRole != "" && matchedRole == explicitRole {
		return roleMatchWeight + exactRoleBonus + 2.0
	}
	if matchedRole != "" && fuzzyRoleMatch(matchedRole, explicitRole) {
		return roleMatchWeight + 1.0
	}
	return 0
}

// scoreLocation fills the location fields of the result. Remote jobs give
// partial credit for merely having location data; otherwise the hierarchy
// decides.
func (s *Scorer) scoreLocation(result *types.ScoreResult, contactLocation, jobLocation string) {
	jobLocation = strings.TrimSpace(jobLocation)
	contactLocation = strings.TrimSpace(contactLocation)

	switch {
	case jobLocation == "":
		result.LocationMatchType = string(types.LocationNoMatch)
		result.LocationMatchDetails = "No job location specified"

	case strings.EqualFold(jobLocation, "remote"):
		if contactLocation != "" {
			result.LocationScore = locationMatchWeight * 0.5
			result.LocationMatchType = string(types.LocationRemote)
			result.LocationMatchDetails = "Remote job - location data available"
		} else {
			result.LocationMatchType = string(types.LocationRemoteNoData)
			result.LocationMatchDetails = "Remote job - no location data"
		}

	case contactLocation == "":
		result.LocationMatchType = string(types.LocationNoMatch)
		result.LocationMatchDetails = "No contact location data"

	default:
		match := s.locations.Match(jobLocation, contactLocation)
		result.LocationScore = match.Score
		result.LocationMatchType = string(match.MatchType)
		result.LocationMatchDetails = match.Details
	}
}

// matchTitleAlias maps a contact title to its canonical role. An exact alias
// lookup wins; otherwise the longest alias appearing as a substring of the
// title does, with the alias string itself as the deterministic tie-break.
func (s *Scorer) matchTitleAlias(titleLower string) string {
	titleLower = strings.TrimSpace(titleLower)
	if titleLower == "" {
		return ""
	}
	if canonical, ok := s.lex.CanonicalRole(titleLower); ok {
		return canonical
	}

	var bestAlias, bestCanonical string
	for alias, canonical := range s.lex.TitleAliases() {
		if !strings.Contains(titleLower, alias) {
			continue
		}
		if len(alias) > len(bestAlias) || (len(alias) == len(bestAlias) && alias < bestAlias) {
			bestAlias, bestCanonical = alias, canonical
		}
	}
	return bestCanonical
}

// fuzzyRoleMatch reports whether two canonical role strings overlap in at
// least half their words, relative to the longer role.
func fuzzyRoleMatch(contactRole, targetRole string) bool {
	if contactRole == "" || targetRole == "" {
		return false
	}
	if contactRole == targetRole {
		return true
	}

	contactWords := strings.Fields(contactRole)
	targetWords := strings.Fields(targetRole)
	targetSet := make(map[string]bool, len(targetWords))
	for _, word := range targetWords {
		targetSet[word] = true
	}

	overlap := 0
	for _, word := range contactWords {
		if targetSet[word] {
			overlap++
		}
	}
	if overlap == 0 {
		return false
	}

	longer := len(contactWords)
	if len(targetWords) > longer {
		longer = len(targetWords)
	}
	return float64(overlap)/float64(longer) >= 0.5
}

// industryAffinityBonus awards small extras when the contact's industry tags
// line up with the kind of role being hired for.
func industryAffinityBonus(contactTags []string, targetRole string) float64 {
	bonus := 0.0

	supportIndustries := []string{"customer service", "support tech", "customer experience", "saas"}
	if (targetRole == "customer success manager" || targetRole == "account executive") &&
		anyTagIn(contactTags, supportIndustries) {
		bonus += 1.0
	}

	saasIndustries := []string{"saas", "software", "tech", "enterprise software"}
	if anyTagIn(contactTags, saasIndustries) {
		bonus += 0.5
	}

	fintechIndustries := []string{"fintech", "payment tech", "financial services"}
	if (targetRole == "accountant" || targetRole == "financial analyst") &&
		anyTagIn(contactTags, fintechIndustries) {
		bonus += 1.0
	}

	return bonus
}

func anyTagIn(tags, wanted []string) bool {
	for _, tag := range tags {
		for _, want := range wanted {
			if strings.EqualFold(strings.TrimSpace(tag), want) {
				return true
			}
		}
	}
	return false
}

func tagListContains(tags []string, target string) bool {
	for _, tag := range tags {
		if strings.EqualFold(strings.TrimSpace(tag), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}

// intersectFold returns the sorted case-insensitive intersection of two tag
// lists, using the spelling from the first list.
func intersectFold(a, b []string) []string {
	bSet := make(map[string]bool, len(b))
	for _, item := range b {
		bSet[strings.ToLower(strings.TrimSpace(item))] = true
	}

	seen := make(map[string]bool)
	var matches []string
	for _, item := range a {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || !bSet[key] || seen[key] {
			continue
		}
		seen[key] = true
		matches = append(matches, item)
	}
	sort.Strings(matches)
	return matches
}

// Explain renders a one-line human summary of a score breakdown. Used by the
// CLI's verbose output.
func Explain(result types.ScoreResult) string {
	if result.TotalScore == SameCompanySentinel {
		return "excluded: same company as the job posting"
	}
	return fmt.Sprintf("total %.1f (skills %.1f, role %.1f, company %.1f, industry %.1f, seniority %.1f, boost %.1f)",
		result.TotalScore, result.SkillScore, result.RoleScore, result.CompanyScore,
		result.IndustryScore, result.SeniorityBonus, result.TaggedBoost)
}
