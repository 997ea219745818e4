// Package extraction derives a structured requirement record from free-text
// job descriptions: detected role with confidence, role-prioritized skills,
// hiring company, and seniority level.
package extraction

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/referral-matcher/internal/lexicon"
	"github.com/jonathan/referral-matcher/internal/types"
)

const (
	// lowConfidenceThreshold is the confidence below which a detected role
	// should not be trusted as ground truth; alternates are suggested instead.
	lowConfidenceThreshold = 0.3

	// maxIncidentalSkills caps skills outside the detected role's vocabulary
	// so incidental word matches cannot drown the relevant skill set. The cap
	// only applies when a role is known.
	maxIncidentalSkills = 10

	// maxSuggestions limits how many alternate roles are returned.
	maxSuggestions = 3
)

// Extractor turns job text into JobRequirements using the lexicon snapshot.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns an Extractor bound to a lexicon snapshot.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract produces the requirement record for a job description. When
// explicitTitle is non-empty its canonical form overrides the detected role
// for scoring; the auto-detected role and confidence are still computed and
// retained for comparison.
func (e *Extractor) Extract(jobText, explicitTitle string) *types.JobRequirements {
	textLower := strings.ToLower(jobText)

	detection := e.detectRole(textLower)

	role := detection.primary
	if role != "" {
		if canonical, ok := e.lex.CanonicalRole(role); ok {
			role = canonical
		}
	}

	var explicitRole string
	if strings.TrimSpace(explicitTitle) != "" {
		explicitRole = strings.ToLower(strings.TrimSpace(explicitTitle))
		if canonical, ok := e.lex.CanonicalRole(explicitRole); ok {
			explicitRole = canonical
		}
	}

	reqs := &types.JobRequirements{
		Role:           role,
		RoleConfidence: detection.confidence,
		SuggestedRoles: detection.suggestions,
		ExplicitRole:   explicitRole,
	}

	reqs.Skills = e.matchSkills(textLower, reqs.TargetRole())

	if company := detectCompany(textLower, e.lex); company != "" {
		reqs.Company = company
		reqs.CompanyTags = e.lex.CompanyTags(company)
	}

	reqs.Seniority = detectSeniority(textLower)

	return reqs
}

// roleDetection is the outcome of the combined role classifiers.
type roleDetection struct {
	primary     string
	confidence  float64
	suggestions []string
}

// roleScore pairs a role with its accumulated evidence weight.
type roleScore struct {
	role  string
	score int
}

// detectRole combines title-alias hits, title-pattern hits, and keyword
// co-occurrence into a single weighted count per role. Title evidence boosts
// confidence: an explicit title phrase is strong evidence, keyword
// co-occurrence alone is not.
func (e *Extractor) detectRole(textLower string) roleDetection {
	scores := make(map[string]int)
	titleEvidence := false

	for alias, canonical := range e.lex.TitleAliases() {
		if strings.Contains(textLower, alias) {
			scores[canonical] += titleAliasWeight
			titleEvidence = true
		}
	}

	for role, patterns := range titlePatterns {
		for _, pattern := range patterns {
			if strings.Contains(textLower, pattern) {
				scores[role] += titlePatternWeight
				titleEvidence = true
			}
		}
	}

	for role, keywords := range roleKeywords {
		for _, kw := range keywords {
			if strings.Contains(textLower, kw.phrase) {
				scores[role] += kw.weight
			}
		}
	}

	if len(scores) == 0 {
		return roleDetection{suggestions: suggestRoles(textLower)}
	}

	ranked := rankRoleScores(scores)
	primary := ranked[0]

	var confidence float64
	if titleEvidence {
		confidence = math.Min(1.0, 0.8+float64(primary.score)/20)
	} else {
		confidence = math.Min(1.0, float64(primary.score)/15)
	}
	confidence = math.Round(confidence*100) / 100

	var suggestions []string
	if confidence < lowConfidenceThreshold {
		// Too weak to assert one answer: surface every scored candidate,
		// then fill from the content rules.
		for _, rs := range ranked {
			if len(suggestions) == maxSuggestions {
				break
			}
			suggestions = append(suggestions, rs.role)
		}
		for _, role := range suggestRoles(textLower) {
			if len(suggestions) == maxSuggestions {
				break
			}
			if !containsString(suggestions, role) {
				suggestions = append(suggestions, role)
			}
		}
	} else {
		for _, rs := range ranked[1:] {
			if len(suggestions) == maxSuggestions {
				break
			}
			suggestions = append(suggestions, rs.role)
		}
	}

	return roleDetection{
		primary:     primary.role,
		confidence:  confidence,
		suggestions: suggestions,
	}
}

// rankRoleScores sorts scored roles by weight descending, breaking ties by
// name so detection is deterministic.
func rankRoleScores(scores map[string]int) []roleScore {
	ranked := make([]roleScore, 0, len(scores))
	for role, score := range scores {
		ranked = append(ranked, roleScore{role: role, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].role < ranked[j].role
	})
	return ranked
}

// suggestRoles maps scattered vocabulary to role suggestions when no scoring
// signal produced a usable answer.
func suggestRoles(textLower string) []string {
	var suggestions []string
	for _, rule := range suggestionRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(textLower, keyword) {
				if !containsString(suggestions, rule.role) {
					suggestions = append(suggestions, rule.role)
				}
				break
			}
		}
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// matchSkills checks every lexicon skill for presence in the job text. With a
// known target role, that role's skills float to the front and incidental
// matches are capped; with no role, every match is kept.
func (e *Extractor) matchSkills(textLower, targetRole string) []string {
	textCompact := strings.ReplaceAll(textLower, " ", "")

	roleSkills := make(map[string]bool)
	if targetRole != "" {
		for _, skill := range e.lex.RoleSkills(targetRole) {
			roleSkills[skill] = true
		}
	}

	var prioritized, incidental []string
	for _, skill := range e.lex.AllSkills() {
		if !skillMentioned(textLower, textCompact, skill) {
			continue
		}
		if roleSkills[skill] {
			prioritized = append(prioritized, skill)
		} else {
			incidental = append(incidental, skill)
		}
	}

	if targetRole == "" {
		return incidental
	}
	if len(incidental) > maxIncidentalSkills {
		incidental = incidental[:maxIncidentalSkills]
	}
	return append(prioritized, incidental...)
}

// skillMentioned reports whether a skill appears in the text as an exact
// phrase, as the phrase with spaces stripped, or via any individual word of a
// multi-word skill.
func skillMentioned(textLower, textCompact, skill string) bool {
	skillLower := strings.ToLower(skill)
	if strings.Contains(textLower, skillLower) {
		return true
	}
	if strings.Contains(textCompact, strings.ReplaceAll(skillLower, " ", "")) {
		return true
	}
	for _, word := range strings.Fields(skillLower) {
		if strings.Contains(textLower, word) {
			return true
		}
	}
	return false
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
