package ranking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/referral-matcher/internal/extraction"
	"github.com/jonathan/referral-matcher/internal/lexicon"
	"github.com/jonathan/referral-matcher/internal/location"
	"github.com/jonathan/referral-matcher/internal/scoring"
	"github.com/jonathan/referral-matcher/internal/types"
)

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	lex := lexicon.New(
		map[string]lexicon.RoleEntry{
			"any:sdr":             {Skills: []string{"cold calling", "salesforce"}},
			"any:product manager": {Skills: []string{"roadmap planning"}},
		},
		map[string]string{
			"sales development representative": "sdr",
			"sdr":                              "sdr",
			"product manager":                  "product manager",
			"marketing manager":                "marketing manager",
			"account executive":                "account executive",
		},
		map[string][]string{},
		lexicon.LocationData{Countries: []string{"United States"}},
	)
	locations := location.New(lex.Locations())
	return NewPipeline(extraction.New(lex), scoring.New(lex, locations, nil))
}

const sdrJobText = "We are hiring a Sales Development Representative. Cold calling, prospecting, and qualifying leads all day."

func TestRun_FiltersAndRanks(t *testing.T) {
	p := testPipeline(t)

	result, err := p.Run(context.Background(), Request{
		JobText: sdrJobText,
		Contacts: []types.Contact{
			{FirstName: "Good", LastName: "Fit", Position: "Sales Development Representative", Skills: []string{"cold calling"}},
			{FirstName: "Too", LastName: "Senior", Position: "Sales Development Manager", Skills: []string{"cold calling"}},
			{FirstName: "No", LastName: "Signal", Position: "Graphic Designer"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "sdr", result.Requirements.Role)
	assert.Equal(t, 3, result.ScoredCount)

	require.Len(t, result.Candidates, 1)
	winner := result.Candidates[0]
	assert.Equal(t, "Good Fit", winner.Contact.FullName())

	// Role 8.0 (exact detected-role match), skills 3.0, plus the
	// preferred-seniority bump for a representative-level title.
	assert.InDelta(t, 13.0, winner.Score.TotalScore, 1e-9)
	assert.InDelta(t, preferredSeniorityBonus, winner.Score.SeniorityBonus, 1e-9)
}

func TestRun_ExcludedSeniorityFiltered(t *testing.T) {
	p := testPipeline(t)

	// Both contacts clear the score gates; the VP title carries an excluded
	// seniority marker for account executive searches.
	result, err := p.Run(context.Background(), Request{
		JobText:  "Join us to close deals and manage the sales cycle.",
		JobTitle: "Account Executive",
		Contacts: []types.Contact{
			{FirstName: "Vip", LastName: "Person", Position: "VP Account Executive"},
			{FirstName: "Line", LastName: "Level", Position: "Account Executive"},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "Line Level", result.Candidates[0].Contact.FullName())
}

func TestRun_OrderingAndTopN(t *testing.T) {
	p := testPipeline(t)

	req := Request{
		JobText: "Product Manager needed to own the roadmap planning and product strategy.",
		Contacts: []types.Contact{
			{FirstName: "Bare", LastName: "Match", Position: "Product Manager"},
			{FirstName: "With", LastName: "Skills", Position: "Product Manager", Skills: []string{"roadmap planning"}},
			{FirstName: "Fuzzy", LastName: "Match", Position: "Marketing Manager"},
		},
	}

	result, err := p.Run(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "product manager", result.Requirements.Role)

	require.Len(t, result.Candidates, 3)
	assert.Equal(t, "With Skills", result.Candidates[0].Contact.FullName())
	assert.Equal(t, "Bare Match", result.Candidates[1].Contact.FullName())
	assert.Equal(t, "Fuzzy Match", result.Candidates[2].Contact.FullName())

	req.TopN = 2
	result, err = p.Run(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, "With Skills", result.Candidates[0].Contact.FullName())
}

func TestRun_DeterministicTieBreak(t *testing.T) {
	p := testPipeline(t)

	req := Request{
		JobText: "Product Manager needed to own the roadmap planning.",
		Contacts: []types.Contact{
			{FirstName: "Zoe", LastName: "Smith", Position: "Product Manager"},
			{FirstName: "Amy", LastName: "Jones", Position: "Product Manager"},
		},
	}

	for i := 0; i < 5; i++ {
		result, err := p.Run(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, result.Candidates, 2)
		assert.Equal(t, "Amy Jones", result.Candidates[0].Contact.FullName())
		assert.Equal(t, "Zoe Smith", result.Candidates[1].Contact.FullName())
	}
}

func TestRun_EmptyResultIsValid(t *testing.T) {
	p := testPipeline(t)

	result, err := p.Run(context.Background(), Request{
		JobText: sdrJobText,
		Contacts: []types.Contact{
			{FirstName: "No", LastName: "Fit", Position: "Graphic Designer"},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
	assert.NotEqual(t, uuid.Nil, result.RunID)
	assert.Equal(t, 1, result.ScoredCount)
}

func TestRun_ContextCancellation(t *testing.T) {
	p := testPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, Request{
		JobText: sdrJobText,
		Contacts: []types.Contact{
			{FirstName: "Any", LastName: "One", Position: "Sales Development Representative"},
		},
	})
	assert.Error(t, err)
}

func TestThresholdsFor(t *testing.T) {
	sdr := thresholdsFor("sdr")
	assert.Equal(t, 6.0, sdr.minRoleScore)
	assert.Equal(t, 10.0, sdr.minTotalScore)

	generic := thresholdsFor("underwater basket weaver")
	assert.Equal(t, 3.0, generic.minRoleScore)
	assert.Equal(t, 6.0, generic.minTotalScore)
	assert.Empty(t, generic.preferredSeniority)
}
