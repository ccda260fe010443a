package batch

import (
	"sort"

	"github.com/lil-jrg/cv-sorter/internal/candidate"
)

// DefaultTopK is the shortlist size handed to recruiters.
const DefaultTopK = 3

// ScoredCandidate is the ephemeral result of scoring one candidate against
// one job.
type ScoredCandidate struct {
	Profile  *candidate.Profile
	Score    float64
	Suitable bool
	// FromCache marks results short-circuited by the on-disk cache.
	FromCache bool
}

// Shortlist is an ordered list of at most k candidates, descending by score.
type Shortlist []ScoredCandidate

// SelectTop filters to suitable candidates, sorts descending by score and
// truncates to k. The sort is stable: exact ties keep discovery order. An
// empty shortlist is a normal outcome, not an error.
func SelectTop(scored []ScoredCandidate, k int) Shortlist {
	if k <= 0 {
		return Shortlist{}
	}

	kept := make(Shortlist, 0, len(scored))
	for _, sc := range scored {
		if sc.Suitable {
			kept = append(kept, sc)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	if len(kept) > k {
		kept = kept[:k]
	}
	return kept
}
