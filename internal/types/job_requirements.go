package types

// JobRequirements represents the structured requirement record derived from a
// free-text job description. It is created fresh per matching request and
// never mutated afterwards.
type JobRequirements struct {
	// Skills is role-prioritized: skills belonging to the detected role's
	// lexicon entry come first, followed by a capped number of incidental
	// matches.
	Skills []string `json:"skills"`

	// Role is the canonical role name, empty when no confident detection was
	// possible. RoleConfidence is in [0,1]. SuggestedRoles carries up to three
	// alternates when confidence is low.
	Role           string   `json:"role,omitempty"`
	RoleConfidence float64  `json:"role_confidence"`
	SuggestedRoles []string `json:"suggested_roles,omitempty"`

	// ExplicitRole is the canonicalized form of a caller-supplied job title.
	// When set it takes priority over Role for scoring; the auto-detected
	// Role is retained for comparison.
	ExplicitRole string `json:"explicit_role,omitempty"`

	// Company is the lower-cased detected hiring company, with its industry
	// tags from the lexicon.
	Company     string   `json:"company,omitempty"`
	CompanyTags []string `json:"company_tags,omitempty"`

	// Seniority is one of the fixed seniority levels (senior, lead, director,
	// manager, junior) or empty.
	Seniority string `json:"seniority,omitempty"`
}

// TargetRole returns the role the scorer should match against: the explicit
// title's canonical form when one was supplied, otherwise the detected role.
func (r *JobRequirements) TargetRole() string {
	if r.ExplicitRole != "" {
		return r.ExplicitRole
	}
	return r.Role
}
