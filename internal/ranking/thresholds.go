package ranking

// roleThresholds are the quality gates applied per target role. Sales roles
// get stricter gates because their title space is noisy and near-misses are
// cheap to accumulate.
type roleThresholds struct {
	minRoleScore  float64
	minTotalScore float64

	// excludeSeniority rejects contacts whose title contains any entry.
	excludeSeniority []string

	// preferredSeniority grants a small total-score bump when the contact's
	// title or seniority tag contains any entry.
	preferredSeniority []string
}

// preferredSeniorityBonus is added to the total score, after filtering, for
// contacts at a preferred seniority level.
const preferredSeniorityBonus = 2.0

var thresholdsByRole = map[string]roleThresholds{
	"sdr": {
		minRoleScore:       6.0,
		minTotalScore:      10.0,
		excludeSeniority:   []string{"vp", "director", "head of", "regional vice president", "senior vice president", "senior manager", "principal"},
		preferredSeniority: []string{"entry", "junior", "associate", "representative"},
	},
	"account executive": {
		minRoleScore:       5.0,
		minTotalScore:      8.0,
		excludeSeniority:   []string{"vp", "director", "head of", "regional vice president"},
		preferredSeniority: []string{"representative", "associate", "junior"},
	},
	"customer success manager": {
		minRoleScore:       5.0,
		minTotalScore:      8.0,
		excludeSeniority:   []string{"vp", "director", "head of"},
		preferredSeniority: []string{"manager", "representative", "associate"},
	},
	"software engineer": {
		minRoleScore:       5.0,
		minTotalScore:      8.0,
		excludeSeniority:   []string{"vp", "director", "head of", "cto", "chief"},
		preferredSeniority: []string{"engineer", "developer", "junior", "associate"},
	},
}

var defaultThresholds = roleThresholds{
	minRoleScore:     3.0,
	minTotalScore:    6.0,
	excludeSeniority: []string{"vp", "director", "head of"},
}

// thresholdsFor returns the gates for a target role, falling back to the
// generic defaults for roles without a dedicated entry.
func thresholdsFor(role string) roleThresholds {
	if t, ok := thresholdsByRole[role]; ok {
		return t
	}
	return defaultThresholds
}
