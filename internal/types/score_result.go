package types

// ScoreResult holds the per-component scoring breakdown for one contact
// against one job. All intermediate values are retained for explainability.
type ScoreResult struct {
	SkillScore     float64 `json:"skill_score"`
	RoleScore      float64 `json:"role_score"`
	CompanyScore   float64 `json:"company_score"`
	IndustryScore  float64 `json:"industry_score"`
	SeniorityBonus float64 `json:"seniority_bonus"`
	TaggedBoost    float64 `json:"tagged_boost"`

	// LocationScore is computed and attached for display and filtering but is
	// not part of TotalScore. See the compute-but-exclude note in DESIGN.md.
	LocationScore        float64 `json:"location_score"`
	LocationMatchType    string  `json:"location_match_type,omitempty"`
	LocationMatchDetails string  `json:"location_match_details,omitempty"`

	// TotalScore is the sum of every component except LocationScore. A
	// same-company contact receives the exclusion sentinel instead.
	TotalScore float64 `json:"total_score"`

	SkillMatches    []string `json:"skill_matches,omitempty"`
	MatchedRole     string   `json:"matched_role,omitempty"`
	IndustryMatches []string `json:"industry_matches,omitempty"`
}

// RankedCandidate pairs a contact with its score breakdown in ranked output.
type RankedCandidate struct {
	Contact Contact     `json:"contact"`
	Score   ScoreResult `json:"score"`
}
