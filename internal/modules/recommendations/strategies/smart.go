package strategies

import (
	"fmt"
	"math"
	"sort"

	"github.com/switchup/plan-engine/internal/domain"
)

// Badge labels for smart ranking
const (
	BadgeTopRecommendation = "top recommendation"
	BadgeRecommended       = "recommended"
)

// SmartStrategy blends profile fit (category match, budget proximity) with
// the plan's popularity standing and feature richness.
type SmartStrategy struct{}

// NewSmartStrategy creates a new smart strategy
func NewSmartStrategy() *SmartStrategy {
	return &SmartStrategy{}
}

// Name returns the strategy name
func (s *SmartStrategy) Name() string {
	return "smart"
}

// Rank orders candidates by composite relevance and labels the winner
func (s *SmartStrategy) Rank(candidates []Candidate, profile *Profile, topN int) []RankedPlan {
	type scored struct {
		candidate Candidate
		relevance float64
	}

	scoredCandidates := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		scoredCandidates = append(scoredCandidates, scored{
			candidate: c,
			relevance: s.relevance(c, profile),
		})
	}

	sort.SliceStable(scoredCandidates, func(i, j int) bool {
		if scoredCandidates[i].relevance != scoredCandidates[j].relevance {
			return scoredCandidates[i].relevance > scoredCandidates[j].relevance
		}
		return scoredCandidates[i].candidate.Score.Total > scoredCandidates[j].candidate.Score.Total
	})

	ranked := make([]RankedPlan, 0, len(scoredCandidates))
	for i, sc := range scoredCandidates {
		badge := BadgeRecommended
		if i == 0 {
			badge = BadgeTopRecommendation
		}
		ranked = append(ranked, RankedPlan{
			Plan:   sc.candidate.Plan,
			Score:  sc.candidate.Score,
			Badge:  badge,
			Reason: fmt.Sprintf("scores %d/100 overall value for your profile", sc.candidate.Score.Total),
		})
	}

	return takeTop(ranked, topN)
}

// relevance computes the composite signal:
// +30 for a category match, up to +20 for budget proximity (skipped for
// electricity, whose tariffs are usage-based), up to +20 from the popularity
// standing, and +2 per extracted feature.
func (s *SmartStrategy) relevance(c Candidate, profile *Profile) float64 {
	rel := 0.0

	if profile != nil {
		if c.Plan.Category == profile.Category {
			rel += 30
		}
		if profile.Budget > 0 && c.Plan.Category != domain.CategoryElectricity && c.Plan.HasPrice() {
			diff := math.Abs(c.Plan.Price() - profile.Budget)
			rel += math.Max(0, 20*(1-diff/profile.Budget))
		}
	}

	rel += c.Popularity * 0.2
	rel += 2 * float64(c.FeatureCount)

	return rel
}

func init() {
	// Auto-register on import
	DefaultRegistry.Register(NewSmartStrategy())
}
