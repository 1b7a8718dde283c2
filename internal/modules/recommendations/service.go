package recommendations

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/switchup/plan-engine/internal/domain"
	"github.com/switchup/plan-engine/internal/modules/extraction"
	"github.com/switchup/plan-engine/internal/modules/market"
	"github.com/switchup/plan-engine/internal/modules/recommendations/strategies"
	"github.com/switchup/plan-engine/internal/modules/scoring/scorers"
	"github.com/switchup/plan-engine/pkg/formulas"
)

// DefaultTopN is the number of recommendations returned when the caller
// does not ask for a specific count
const DefaultTopN = 4

// Service turns a catalog snapshot into ranked recommendations under one of
// the registered strategies. Stateless: every call recomputes candidates
// from the snapshot it is handed.
type Service struct {
	scorer    *scorers.ValueScorer
	extractor *extraction.Extractor
	baseline  *market.BaselineCalculator
	registry  *strategies.Registry
	log       zerolog.Logger
}

// NewService creates a recommendation service backed by the default
// strategy registry
func NewService(
	scorer *scorers.ValueScorer,
	extractor *extraction.Extractor,
	baseline *market.BaselineCalculator,
	log zerolog.Logger,
) *Service {
	return &Service{
		scorer:    scorer,
		extractor: extractor,
		baseline:  baseline,
		registry:  strategies.DefaultRegistry,
		log:       log.With().Str("service", "recommendations").Logger(),
	}
}

// Rank selects and labels the top plans from the snapshot
func (s *Service) Rank(
	snapshot []domain.Plan,
	strategyName string,
	profile *strategies.Profile,
	topN int,
) ([]strategies.RankedPlan, error) {
	strategy, err := s.registry.Get(strategyName)
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	candidates := s.buildCandidates(snapshot)
	ranked := strategy.Rank(candidates, profile, topN)

	s.log.Debug().
		Str("strategy", strategy.Name()).
		Int("candidates", len(candidates)).
		Int("returned", len(ranked)).
		Msg("Ranked catalog")

	return ranked, nil
}

// buildCandidates precomputes every signal the strategies rank by
func (s *Service) buildCandidates(snapshot []domain.Plan) []strategies.Candidate {
	pricesByCategory := make(map[domain.Category][]float64)
	for _, plan := range snapshot {
		if plan.HasPrice() {
			pricesByCategory[plan.Category] = append(pricesByCategory[plan.Category], plan.Price())
		}
	}

	candidates := make([]strategies.Candidate, 0, len(snapshot))
	for _, plan := range snapshot {
		specs := s.extractor.Extract(plan.Benefits(), plan.Category)
		featureCount := specs.FeatureCount()

		avg := s.baseline.Average(snapshot, plan.Category)
		savings := 0.0
		if plan.HasPrice() && avg > plan.Price() {
			savings = avg - plan.Price()
		}

		candidates = append(candidates, strategies.Candidate{
			Plan:         plan,
			Score:        s.scorer.Score(plan, snapshot),
			FeatureCount: featureCount,
			Popularity:   popularity(plan, pricesByCategory[plan.Category], featureCount),
			Savings:      savings,
		})
	}

	return candidates
}

// popularity is the deterministic stand-in for usage data: cheaper plans
// within a category rank as more popular (inverse price percentile), blended
// with feature richness. Unpriced plans take the median standing.
func popularity(plan domain.Plan, categoryPrices []float64, featureCount int) float64 {
	standing := 50.0
	if plan.HasPrice() {
		standing = 100 - formulas.PercentileRank(categoryPrices, plan.Price())
	}

	richness := math.Min(float64(featureCount), 10) * 10

	return 0.6*standing + 0.4*richness
}
