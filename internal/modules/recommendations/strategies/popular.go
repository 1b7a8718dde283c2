package strategies

import (
	"fmt"
	"sort"
)

// BadgeMostPopular labels popularity-ranked entries
const BadgeMostPopular = "most popular"

// PopularStrategy ranks by the deterministic popularity standing: the plan's
// inverse price percentile within its category blended with feature richness.
// It stands in for real usage data, which the catalog does not carry.
type PopularStrategy struct{}

// NewPopularStrategy creates a new popularity strategy
func NewPopularStrategy() *PopularStrategy {
	return &PopularStrategy{}
}

// Name returns the strategy name
func (s *PopularStrategy) Name() string {
	return "popular"
}

// Rank orders candidates by popularity standing
func (s *PopularStrategy) Rank(candidates []Candidate, profile *Profile, topN int) []RankedPlan {
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Popularity != ordered[j].Popularity {
			return ordered[i].Popularity > ordered[j].Popularity
		}
		return ordered[i].Score.Total > ordered[j].Score.Total
	})

	ranked := make([]RankedPlan, 0, len(ordered))
	for _, c := range ordered {
		ranked = append(ranked, RankedPlan{
			Plan:   c.Plan,
			Score:  c.Score,
			Badge:  BadgeMostPopular,
			Reason: fmt.Sprintf("a leading pick among %s plans", c.Plan.Category),
		})
	}

	return takeTop(ranked, topN)
}

func init() {
	// Auto-register on import
	DefaultRegistry.Register(NewPopularStrategy())
}
