// Package ranking runs the end-to-end matching pipeline: extract requirements
// from the job text, score every contact concurrently, apply role-specific
// quality gates, and return the top candidates.
package ranking

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/referral-matcher/internal/extraction"
	"github.com/jonathan/referral-matcher/internal/scoring"
	"github.com/jonathan/referral-matcher/internal/types"
)

// defaultTopN is how many candidates a request returns when it doesn't say.
const defaultTopN = 10

// scoringConcurrency bounds the number of contacts scored at once. Scoring is
// CPU-bound string work, so a small fan-out is enough.
const scoringConcurrency = 8

// Pipeline wires the extractor and scorer into a reusable matching engine.
// Safe for concurrent use.
type Pipeline struct {
	extractor *extraction.Extractor
	scorer    *scoring.Scorer
}

// NewPipeline builds a Pipeline from already-constructed stages.
func NewPipeline(extractor *extraction.Extractor, scorer *scoring.Scorer) *Pipeline {
	return &Pipeline{extractor: extractor, scorer: scorer}
}

// Request is one matching run: a job description plus the contacts to rank
// and the optional preference knobs.
type Request struct {
	JobText  string
	Contacts []types.Contact

	// JobTitle, when set, overrides auto-detected role classification.
	JobTitle string

	// AlternativeTitles are acceptable secondary titles for role credit.
	AlternativeTitles []string

	PreferredCompanies  []string
	PreferredIndustries []string
	JobLocation         string

	// TopN caps the returned candidates; zero means the default.
	TopN int
}

// Result is a completed matching run. An empty candidate list is a valid
// outcome, not an error.
type Result struct {
	RunID        uuid.UUID               `json:"run_id"`
	Requirements *types.JobRequirements  `json:"requirements"`
	Candidates   []types.RankedCandidate `json:"candidates"`

	// ScoredCount is how many contacts were scored before filtering.
	ScoredCount int `json:"scored_count"`
}

// Run executes one matching request. The only error source is context
// cancellation.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	reqs := p.extractor.Extract(req.JobText, req.JobTitle)

	opts := scoring.Options{
		PreferredCompanies:  req.PreferredCompanies,
		PreferredIndustries: req.PreferredIndustries,
		JobLocation:         req.JobLocation,
		AlternativeTitles:   req.AlternativeTitles,
	}

	scores := make([]types.ScoreResult, len(req.Contacts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(scoringConcurrency)
	for i, contact := range req.Contacts {
		i, contact := i, contact
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			scores[i] = p.scorer.Score(contact, reqs, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	gates := thresholdsFor(reqs.TargetRole())

	var candidates []types.RankedCandidate
	for i, contact := range req.Contacts {
		score := scores[i]
		if score.RoleScore < gates.minRoleScore {
			continue
		}
		if score.TotalScore < gates.minTotalScore {
			continue
		}
		if matchesAnySubstring(strings.ToLower(contact.Position), gates.excludeSeniority) {
			continue
		}
		if preferredSeniorityMatch(contact, gates.preferredSeniority) {
			score.SeniorityBonus += preferredSeniorityBonus
			score.TotalScore += preferredSeniorityBonus
		}
		candidates = append(candidates, types.RankedCandidate{Contact: contact, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score.TotalScore != candidates[j].Score.TotalScore {
			return candidates[i].Score.TotalScore > candidates[j].Score.TotalScore
		}
		return candidates[i].Contact.FullName() < candidates[j].Contact.FullName()
	})

	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	return &Result{
		RunID:        uuid.New(),
		Requirements: reqs,
		Candidates:   candidates,
		ScoredCount:  len(req.Contacts),
	}, nil
}

func matchesAnySubstring(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// preferredSeniorityMatch checks both the contact's raw title and its
// seniority tag; either is enough.
func preferredSeniorityMatch(contact types.Contact, preferred []string) bool {
	title := strings.ToLower(contact.Position)
	tag := strings.ToLower(contact.SeniorityTag)
	for _, level := range preferred {
		if strings.Contains(title, level) || strings.Contains(tag, level) {
			return true
		}
	}
	return false
}
