package strategies

import (
	"fmt"
	"sort"
)

// BadgeMaximumSavings labels savings-ranked entries
const BadgeMaximumSavings = "maximum savings"

// SavingsStrategy ranks by estimated monthly savings: how far below the
// category's average price the plan sits. Unpriced plans save nothing.
type SavingsStrategy struct{}

// NewSavingsStrategy creates a new savings strategy
func NewSavingsStrategy() *SavingsStrategy {
	return &SavingsStrategy{}
}

// Name returns the strategy name
func (s *SavingsStrategy) Name() string {
	return "savings"
}

// Rank orders candidates by estimated monthly savings
func (s *SavingsStrategy) Rank(candidates []Candidate, profile *Profile, topN int) []RankedPlan {
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Savings != ordered[j].Savings {
			return ordered[i].Savings > ordered[j].Savings
		}
		return ordered[i].Score.Total > ordered[j].Score.Total
	})

	ranked := make([]RankedPlan, 0, len(ordered))
	for _, c := range ordered {
		reason := "priced at the category average"
		if c.Savings > 0 {
			reason = fmt.Sprintf("saves about %.0f ILS per month vs the category average", c.Savings)
		}
		ranked = append(ranked, RankedPlan{
			Plan:   c.Plan,
			Score:  c.Score,
			Badge:  BadgeMaximumSavings,
			Reason: reason,
		})
	}

	return takeTop(ranked, topN)
}

func init() {
	// Auto-register on import
	DefaultRegistry.Register(NewSavingsStrategy())
}
