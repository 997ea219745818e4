package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/referral-matcher/internal/lexicon"
	"github.com/jonathan/referral-matcher/internal/location"
	"github.com/jonathan/referral-matcher/internal/types"
)

func testScorer(t *testing.T, boost BoostFunc) *Scorer {
	t.Helper()
	lex := lexicon.New(
		map[string]lexicon.RoleEntry{
			"any:sdr": {Skills: []string{"cold calling", "salesforce"}},
		},
		map[string]string{
			"sales development representative":    "sdr",
			"sdr":                                 "sdr",
			"outbound prospector":                 "sdr",
			"business development representative": "bdr",
			"bdr":                                 "bdr",
			"account executive":                   "account executive",
			"product manager":                     "product manager",
			"marketing manager":                   "marketing manager",
		},
		map[string][]string{
			"Zendesk": {"saas", "support tech"},
		},
		lexicon.LocationData{Countries: []string{"United States"}},
	)
	locations := location.New(lexicon.LocationData{
		Countries: []string{"United States"},
		States:    map[string][]string{"United States": {"Texas"}},
		Cities:    map[string][]string{"Texas": {"Austin"}},
	})
	return New(lex, locations, boost)
}

func TestScore_SameCompanyExcluded(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{Company: "zendesk", Skills: []string{"cold calling"}}

	got := s.Score(types.Contact{
		Position: "Sales Development Representative",
		Company:  "Zendesk, Inc.",
		Skills:   []string{"cold calling"},
	}, reqs, Options{})

	assert.Equal(t, SameCompanySentinel, got.TotalScore)
	assert.Equal(t, SameCompanySentinel, got.CompanyScore)
	assert.Zero(t, got.SkillScore)
}

func TestScore_EmptyCompanyNeverExcludes(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{Skills: []string{"cold calling"}}

	got := s.Score(types.Contact{
		Position: "Outbound Prospector",
		Company:  "",
		Skills:   []string{"cold calling"},
	}, reqs, Options{})

	assert.NotEqual(t, SameCompanySentinel, got.TotalScore)
	assert.Equal(t, 3.0, got.SkillScore)
}

func TestScore_LocationScoreExcludedFromTotal(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{Skills: []string{"cold calling"}}

	got := s.Score(types.Contact{
		Position:    "Graphic Designer",
		Company:     "Acme",
		Skills:      []string{"cold calling"},
		LocationRaw: "Austin",
	}, reqs, Options{JobLocation: "Texas"})

	require.Equal(t, 3.5, got.LocationScore)
	assert.Equal(t, string(types.LocationCityInState), got.LocationMatchType)

	componentSum := got.SkillScore + got.RoleScore + got.CompanyScore +
		got.IndustryScore + got.SeniorityBonus + got.TaggedBoost
	assert.Equal(t, componentSum, got.TotalScore)
}

func TestScore_SDRStrictTiers(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{Role: "sdr", ExplicitRole: "sdr"}

	tests := []struct {
		name     string
		position string
		want     float64
	}{
		{"exact sdr title", "Sales Development Representative", 11.0},
		{"canonical sdr via alias", "Outbound Prospector", 6.0},
		{"unrelated title", "Graphic Designer", 0},
		{"manager penalized", "Sales Development Manager", managerPenalty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(types.Contact{Position: tt.position}, reqs, Options{})
			assert.Equal(t, tt.want, got.RoleScore)
		})
	}
}

func TestScore_ExplicitTitleTiers(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{ExplicitRole: "product manager"}

	exact := s.Score(types.Contact{Position: "Product Manager"}, reqs, Options{})
	assert.Equal(t, 10.0, exact.RoleScore)

	// "marketing manager" shares half its tokens with "product manager".
	fuzzy := s.Score(types.Contact{Position: "Marketing Manager"}, reqs, Options{})
	assert.Equal(t, 6.0, fuzzy.RoleScore)

	assert.Greater(t, exact.RoleScore, fuzzy.RoleScore)
}

func TestScore_AlternativeTitlesFallback(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{Role: "sdr", ExplicitRole: "sdr"}

	got := s.Score(types.Contact{Position: "Account Executive"}, reqs,
		Options{AlternativeTitles: []string{"Account Executive"}})

	assert.Equal(t, 6.0, got.RoleScore)
}

func TestScore_DetectedRoleTiers(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{Role: "sdr"}

	exact := s.Score(types.Contact{Position: "Outbound Prospector"}, reqs, Options{})
	assert.Equal(t, 8.0, exact.RoleScore)

	related := s.Score(types.Contact{Position: "Business Development Representative"}, reqs, Options{})
	assert.Equal(t, 2.0, related.RoleScore)

	// Unrelated pairing, checked against a non-SDR target so the manager
	// penalty stays out of the way.
	unrelated := s.Score(types.Contact{Position: "Business Development Representative"},
		&types.JobRequirements{Role: "product manager"}, Options{})
	assert.Zero(t, unrelated.RoleScore)
}

func TestScore_CompanyClusters(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{Company: "zendesk"}

	clustered := s.Score(types.Contact{Position: "Graphic Designer", Company: "Intercom"}, reqs, Options{})
	assert.InDelta(t, companyMatchWeight*0.8, clustered.CompanyScore, 1e-9)

	outside := s.Score(types.Contact{Position: "Graphic Designer", Company: "Acme"}, reqs, Options{})
	assert.Zero(t, outside.CompanyScore)
}

func TestScore_PreferenceBonusesFoldIntoComponents(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{Company: "zendesk"}

	got := s.Score(types.Contact{
		Position:     "Graphic Designer",
		Company:      "Intercom",
		IndustryTags: []string{"saas"},
	}, reqs, Options{
		PreferredCompanies:  []string{"Intercom"},
		PreferredIndustries: []string{"SaaS"},
	})

	assert.InDelta(t, companyMatchWeight*0.8+companyPreferenceBonus, got.CompanyScore, 1e-9)
	// Industry: saas affinity half point plus the preference bonus.
	assert.InDelta(t, 0.5+industryPreferenceBonus, got.IndustryScore, 1e-9)

	componentSum := got.SkillScore + got.RoleScore + got.CompanyScore +
		got.IndustryScore + got.SeniorityBonus + got.TaggedBoost
	assert.InDelta(t, componentSum, got.TotalScore, 1e-9)
}

func TestScore_IndustryAffinity(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{
		Role:        "account executive",
		Company:     "zendesk",
		CompanyTags: []string{"saas"},
	}

	got := s.Score(types.Contact{
		Position:     "Graphic Designer",
		Company:      "Acme",
		IndustryTags: []string{"saas", "fintech"},
	}, reqs, Options{})

	// One tag overlap (1.0), support-industry affinity for an AE search
	// (1.0), and the generic SaaS half point.
	assert.InDelta(t, 2.5, got.IndustryScore, 1e-9)
	assert.Equal(t, []string{"saas"}, got.IndustryMatches)
}

func TestScore_SeniorityBonus(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{Seniority: "senior"}

	got := s.Score(types.Contact{Position: "Graphic Designer", SeniorityTag: "Senior"}, reqs, Options{})
	assert.Equal(t, seniorityBonusWeight, got.SeniorityBonus)

	got = s.Score(types.Contact{Position: "Graphic Designer", SeniorityTag: "junior"}, reqs, Options{})
	assert.Zero(t, got.SeniorityBonus)
}

func TestScore_RemoteJob(t *testing.T) {
	s := testScorer(t, nil)
	reqs := &types.JobRequirements{}

	withLocation := s.Score(types.Contact{Position: "Graphic Designer", LocationRaw: "Austin"}, reqs,
		Options{JobLocation: "Remote"})
	assert.Equal(t, locationMatchWeight*0.5, withLocation.LocationScore)
	assert.Equal(t, string(types.LocationRemote), withLocation.LocationMatchType)

	withoutLocation := s.Score(types.Contact{Position: "Graphic Designer"}, reqs,
		Options{JobLocation: "Remote"})
	assert.Zero(t, withoutLocation.LocationScore)
	assert.Equal(t, string(types.LocationRemoteNoData), withoutLocation.LocationMatchType)
}

func TestScore_TaggedBoost(t *testing.T) {
	s := testScorer(t, func(fullName string) float64 {
		if fullName == "Ada Lovelace" {
			return 4.0
		}
		return 0
	})
	reqs := &types.JobRequirements{}

	boosted := s.Score(types.Contact{FirstName: "Ada", LastName: "Lovelace", Position: "Graphic Designer"}, reqs, Options{})
	assert.Equal(t, 4.0, boosted.TaggedBoost)
	assert.Equal(t, 4.0, boosted.TotalScore)

	plain := s.Score(types.Contact{FirstName: "Alan", LastName: "Turing", Position: "Graphic Designer"}, reqs, Options{})
	assert.Zero(t, plain.TaggedBoost)
}

func TestFuzzyRoleMatch(t *testing.T) {
	tests := []struct {
		contact, target string
		want            bool
	}{
		{"product manager", "product manager", true},
		{"marketing manager", "product manager", true},
		{"sales development representative", "business development representative", true},
		{"graphic designer", "product manager", false},
		{"", "product manager", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fuzzyRoleMatch(tt.contact, tt.target), "%q vs %q", tt.contact, tt.target)
	}
}
