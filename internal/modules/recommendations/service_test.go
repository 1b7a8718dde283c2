package recommendations

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/switchup/plan-engine/internal/domain"
	"github.com/switchup/plan-engine/internal/modules/extraction"
	"github.com/switchup/plan-engine/internal/modules/market"
	"github.com/switchup/plan-engine/internal/modules/recommendations/strategies"
	"github.com/switchup/plan-engine/internal/modules/scoring/scorers"
)

func newService() *Service {
	baseline := market.NewBaselineCalculator(market.DefaultAverages())
	return NewService(
		scorers.NewValueScorer(baseline),
		extraction.New(),
		baseline,
		zerolog.Nop(),
	)
}

func price(v float64) *float64 {
	return &v
}

// mixedCatalog is a 10-plan catalog across three categories
func mixedCatalog() []domain.Plan {
	return []domain.Plan{
		{ID: "c1", Company: "cell-a", Category: domain.CategoryCellular, PlanName: "basic", MonthlyPrice: price(40)},
		{ID: "c2", Company: "cell-b", Category: domain.CategoryCellular, PlanName: "plus", MonthlyPrice: price(55)},
		{ID: "c3", Company: "cell-c", Category: domain.CategoryCellular, PlanName: "pro", MonthlyPrice: price(65)},
		{ID: "c4", Company: "cell-d", Category: domain.CategoryCellular, PlanName: "max", MonthlyPrice: price(90)},
		{ID: "i1", Company: "net-a", Category: domain.CategoryInternet, PlanName: "lite", MonthlyPrice: price(80)},
		{ID: "i2", Company: "net-b", Category: domain.CategoryInternet, PlanName: "mid", MonthlyPrice: price(100)},
		{ID: "i3", Company: "net-c", Category: domain.CategoryInternet, PlanName: "top", MonthlyPrice: price(120)},
		{ID: "t1", Company: "tv-a", Category: domain.CategoryTV, PlanName: "small", MonthlyPrice: price(120)},
		{ID: "t2", Company: "tv-b", Category: domain.CategoryTV, PlanName: "mid", MonthlyPrice: price(150)},
		{ID: "t3", Company: "tv-c", Category: domain.CategoryTV, PlanName: "big", MonthlyPrice: price(180)},
	}
}

func TestSmartRankingWithProfile(t *testing.T) {
	svc := newService()
	profile := &strategies.Profile{Category: domain.CategoryCellular, Budget: 60}

	ranked, err := svc.Rank(mixedCatalog(), "smart", profile, 4)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	if len(ranked) != 4 {
		t.Fatalf("got %d recommendations, want 4", len(ranked))
	}
	if ranked[0].Badge != strategies.BadgeTopRecommendation {
		t.Errorf("entry 0 badge = %q, want %q", ranked[0].Badge, strategies.BadgeTopRecommendation)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Badge != strategies.BadgeRecommended {
			t.Errorf("entry %d badge = %q, want %q", i, ranked[i].Badge, strategies.BadgeRecommended)
		}
	}

	// The +30 category bonus dominates: every selected plan matches the profile
	for i, r := range ranked {
		if r.Plan.Category != domain.CategoryCellular {
			t.Errorf("entry %d category = %s, want cellular", i, r.Plan.Category)
		}
	}
}

func TestSmartRankingWithoutProfile(t *testing.T) {
	svc := newService()

	ranked, err := svc.Rank(mixedCatalog(), "smart", nil, 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	// topN defaults to 4
	if len(ranked) != DefaultTopN {
		t.Errorf("got %d recommendations, want %d", len(ranked), DefaultTopN)
	}
}

func TestPopularRanking(t *testing.T) {
	svc := newService()

	ranked, err := svc.Rank(mixedCatalog(), "popular", nil, 4)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	for _, r := range ranked {
		if r.Badge != strategies.BadgeMostPopular {
			t.Errorf("badge = %q, want %q", r.Badge, strategies.BadgeMostPopular)
		}
	}

	// With no extracted features, popularity is the inverse price standing:
	// the cheapest plan of the largest category leads
	if ranked[0].Plan.ID != "c1" {
		t.Errorf("entry 0 = %s, want c1", ranked[0].Plan.ID)
	}
}

func TestSavingsRanking(t *testing.T) {
	svc := newService()

	ranked, err := svc.Rank(mixedCatalog(), "savings", nil, 4)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	// TV plan t1 sits 30 ILS below its 150 category average, the largest gap
	if ranked[0].Plan.ID != "t1" {
		t.Errorf("entry 0 = %s, want t1", ranked[0].Plan.ID)
	}
	if ranked[0].Badge != strategies.BadgeMaximumSavings {
		t.Errorf("badge = %q, want %q", ranked[0].Badge, strategies.BadgeMaximumSavings)
	}
	if !strings.Contains(ranked[0].Reason, "30") {
		t.Errorf("reason = %q, want the 30 ILS/month figure", ranked[0].Reason)
	}
}

func TestRankSmallCatalogReturnsAllEntries(t *testing.T) {
	svc := newService()
	catalog := mixedCatalog()[:2]

	for _, strategy := range []string{"smart", "popular", "savings"} {
		ranked, err := svc.Rank(catalog, strategy, nil, 4)
		if err != nil {
			t.Fatalf("Rank(%s) failed: %v", strategy, err)
		}
		if len(ranked) != 2 {
			t.Errorf("Rank(%s) returned %d entries, want 2 (no padding)", strategy, len(ranked))
		}
	}
}

func TestRankUnknownStrategy(t *testing.T) {
	svc := newService()

	_, err := svc.Rank(mixedCatalog(), "trending", nil, 4)
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestRankDeterminism(t *testing.T) {
	svc := newService()
	profile := &strategies.Profile{Category: domain.CategoryCellular, Budget: 60}

	for _, strategy := range []string{"smart", "popular", "savings"} {
		first, err := svc.Rank(mixedCatalog(), strategy, profile, 4)
		if err != nil {
			t.Fatalf("Rank(%s) failed: %v", strategy, err)
		}
		second, err := svc.Rank(mixedCatalog(), strategy, profile, 4)
		if err != nil {
			t.Fatalf("Rank(%s) failed: %v", strategy, err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Errorf("Rank(%s) is not deterministic", strategy)
		}
	}
}

func TestRegistryNames(t *testing.T) {
	names := strategies.DefaultRegistry.Names()
	want := []string{"popular", "savings", "smart"}

	if !reflect.DeepEqual(names, want) {
		t.Errorf("registry names = %v, want %v", names, want)
	}
}
