package scoring

// Scoring weights, consistent across all jobs. Skills and role matching
// dominate; industry and company similarity are nice-to-haves.
const (
	skillMatchWeight        = 3.0
	roleMatchWeight         = 5.0
	companyMatchWeight      = 2.0
	industryMatchWeight     = 1.0
	seniorityBonusWeight    = 1.5
	exactRoleBonus          = 3.0
	companyPreferenceBonus  = 5.0
	industryPreferenceBonus = 3.0
	locationMatchWeight     = 2.0

	// SameCompanySentinel is the total score assigned to a contact employed
	// by the hiring company. It must dominate every threshold downstream so
	// such contacts are never surfaced as referrals for their own employer.
	SameCompanySentinel = -100.0

	// managerPenalty replaces the role score when a manager-level contact is
	// scored against an entry-level individual-contributor search. A penalty
	// rather than a zero: a senior manager must never outrank a correctly
	// matched junior candidate on total score.
	managerPenalty = -50.0
)
