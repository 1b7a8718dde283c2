package market

import (
	"github.com/switchup/plan-engine/internal/domain"
	"github.com/switchup/plan-engine/pkg/formulas"
)

// Defaults maps each category to the reference average used when a catalog
// snapshot has no priced plans in that category. Scoring divides by the
// baseline, so the fallback keeps it positive under any input.
type Defaults map[domain.Category]float64

// DefaultAverages returns the standard per-category fallback table (ILS/month).
func DefaultAverages() Defaults {
	return Defaults{
		domain.CategoryElectricity: 400,
		domain.CategoryCellular:    50,
		domain.CategoryInternet:    100,
		domain.CategoryTV:          150,
		domain.CategoryStreaming:   40,
	}
}

// BaselineCalculator computes per-category reference prices from a catalog
// snapshot. The defaults table is injected so tests can substitute baselines
// without touching shared state.
type BaselineCalculator struct {
	defaults Defaults
}

// NewBaselineCalculator creates a calculator with the given fallback table
func NewBaselineCalculator(defaults Defaults) *BaselineCalculator {
	return &BaselineCalculator{defaults: defaults}
}

// Average returns the mean known monthly price for the category, or the
// fallback default when no plan in the snapshot carries a positive price.
// Pure and snapshot-scoped: callers must recompute per snapshot, never
// cache across them.
func (c *BaselineCalculator) Average(catalog []domain.Plan, category domain.Category) float64 {
	var prices []float64
	for _, plan := range catalog {
		if plan.Category == category && plan.HasPrice() {
			prices = append(prices, plan.Price())
		}
	}

	if len(prices) == 0 {
		if d, ok := c.defaults[category]; ok && d > 0 {
			return d
		}
		// Unknown category with no priced plans: keep the baseline positive
		// so downstream ratios stay finite.
		return 1
	}

	return formulas.Mean(prices)
}
