package scorers

import (
	"reflect"
	"testing"

	"github.com/switchup/plan-engine/internal/domain"
	"github.com/switchup/plan-engine/internal/modules/market"
	"github.com/switchup/plan-engine/internal/modules/scoring"
)

func newScorer() *ValueScorer {
	return NewValueScorer(market.NewBaselineCalculator(market.DefaultAverages()))
}

func price(v float64) *float64 {
	return &v
}

func text(s string) *string {
	return &s
}

// flatCatalog returns a category catalog whose average price is exactly avg
func flatCatalog(category domain.Category, avg float64) []domain.Plan {
	return []domain.Plan{
		{Company: "a", Category: category, PlanName: "one", MonthlyPrice: price(avg)},
		{Company: "b", Category: category, PlanName: "two", MonthlyPrice: price(avg)},
	}
}

func TestPriceScoreSteps(t *testing.T) {
	scorer := newScorer()
	catalog := flatCatalog(domain.CategoryInternet, 100)

	tests := []struct {
		name  string
		price float64
		want  int
	}{
		{"ratio 0.70 boundary", 70, 100},
		{"ratio 0.85 boundary", 85, 85},
		{"ratio 1.00 boundary", 100, 70},
		{"ratio 1.15 boundary", 115, 50},
		{"ratio 1.30 boundary", 130, 30},
		{"above 1.30", 131, 15},
		{"deep discount", 40, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := domain.Plan{Company: "x", Category: domain.CategoryInternet, PlanName: "plain", MonthlyPrice: price(tt.price)}
			got := scorer.Score(plan, catalog).PriceScore
			if got != tt.want {
				t.Errorf("PriceScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPriceMonotonicity(t *testing.T) {
	scorer := newScorer()
	catalog := flatCatalog(domain.CategoryInternet, 100)

	prev := -1
	// Decreasing price must never decrease the price score
	for p := 200.0; p >= 10; p -= 5 {
		plan := domain.Plan{Company: "x", Category: domain.CategoryInternet, PlanName: "plain", MonthlyPrice: price(p)}
		got := scorer.Score(plan, catalog).PriceScore
		if got < prev {
			t.Fatalf("PriceScore decreased from %d to %d as price dropped to %.0f", prev, got, p)
		}
		prev = got
	}
}

func TestDealQualityBands(t *testing.T) {
	tests := []struct {
		pct  int
		want scoring.DealQuality
	}{
		{100, scoring.DealExcellent},
		{20, scoring.DealExcellent},
		{19, scoring.DealGood},
		{5, scoring.DealGood},
		{4, scoring.DealFair},
		{0, scoring.DealFair},
		{-10, scoring.DealFair},
		{-11, scoring.DealExpensive},
		{-50, scoring.DealExpensive},
	}

	for _, tt := range tests {
		if got := scoring.DealQualityFor(tt.pct); got != tt.want {
			t.Errorf("DealQualityFor(%d) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := newScorer()
	catalog := flatCatalog(domain.CategoryCellular, 50)

	plans := []domain.Plan{
		{Company: "x", Category: domain.CategoryCellular, PlanName: "5G ללא הגבלה משפחתי", MonthlyPrice: price(10),
			CommitmentText: text("ללא התחייבות"),
			BenefitsText:   text("מתנה: אוזניות אלחוטיות, החזר כספי של 100 שקלים, נטפליקס וספוטיפיי כלולים")},
		{Company: "y", Category: domain.CategoryCellular, PlanName: "בסיסית", MonthlyPrice: price(500),
			CommitmentText: text("התחייבות ל-24 חודשים")},
		{Company: "z", Category: domain.CategoryCellular, PlanName: ""},
	}

	for _, plan := range plans {
		score := scorer.Score(plan, catalog)
		for name, v := range map[string]int{
			"Total":            score.Total,
			"PriceScore":       score.PriceScore,
			"FeaturesScore":    score.FeaturesScore,
			"FlexibilityScore": score.FlexibilityScore,
			"BonusScore":       score.BonusScore,
		} {
			if v < 0 || v > 100 {
				t.Errorf("plan %q: %s = %d, out of [0,100]", plan.PlanName, name, v)
			}
		}
	}
}

// Three internet plans priced 90/100/110: the 90 plan sits 10% below the
// 100 average, scoring 70 on price and landing in the "good" band.
func TestScoreInternetTrioScenario(t *testing.T) {
	scorer := newScorer()

	catalog := []domain.Plan{
		{Company: "a", Category: domain.CategoryInternet, PlanName: "basic", MonthlyPrice: price(90)},
		{Company: "b", Category: domain.CategoryInternet, PlanName: "plus", MonthlyPrice: price(100)},
		{Company: "c", Category: domain.CategoryInternet, PlanName: "max", MonthlyPrice: price(110)},
	}

	score := scorer.Score(catalog[0], catalog)

	if score.PriceScore != 70 {
		t.Errorf("PriceScore = %d, want 70", score.PriceScore)
	}
	if score.PercentFromAverage != 10 {
		t.Errorf("PercentFromAverage = %d, want 10", score.PercentFromAverage)
	}
	if score.DealQuality != scoring.DealGood {
		t.Errorf("DealQuality = %s, want good", score.DealQuality)
	}
}

func TestScoreCellular5GUnlimited(t *testing.T) {
	scorer := newScorer()
	catalog := flatCatalog(domain.CategoryCellular, 50)

	plan := domain.Plan{
		Company:      "cellex",
		Category:     domain.CategoryCellular,
		PlanName:     "5G ללא הגבלה",
		MonthlyPrice: price(50),
	}

	score := scorer.Score(plan, catalog)

	// 50 base, +10 for the unlimited marker, +10 for the 5G marker
	if score.FeaturesScore != 70 {
		t.Errorf("FeaturesScore = %d, want 70", score.FeaturesScore)
	}
	// No commitment info at all stays at the neutral default
	if score.FlexibilityScore != 50 {
		t.Errorf("FlexibilityScore = %d, want 50", score.FlexibilityScore)
	}

	found := false
	for _, reason := range score.WhyChoose {
		if reason == "includes 5G at no extra cost" {
			found = true
		}
	}
	if !found {
		t.Errorf("WhyChoose = %v, missing the 5G reason", score.WhyChoose)
	}
}

func TestFlexibilityScore(t *testing.T) {
	tests := []struct {
		name       string
		commitment string
		planName   string
		want       int
	}{
		{"no commitment marker", "ללא התחייבות", "regular", 100},
		{"no commitment in plan name", "", "חבילה ללא התחייבות", 100},
		{"annual term", "התחייבות ל-12 חודשים", "regular", 40},
		{"two year term", "התחייבות ל-24 חודשים", "regular", 20},
		{"two year in words", "התחייבות לשנתיים", "regular", 20},
		{"unknown", "", "regular", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreFlexibility(tt.commitment, tt.planName)
			if got != tt.want {
				t.Errorf("scoreFlexibility = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBonusScore(t *testing.T) {
	tests := []struct {
		name     string
		benefits string
		want     int
	}{
		{"empty", "", 0},
		{"ten runes or fewer", "מתנה: שקית", 0},
		{"long with gift marker", "מתנה: אוזניות אלחוטיות", 75},
		{"long without markers", "כולל שירות תמיכה מורחב", 50},
		{"gift and refund markers", "מתנה: אוזניות וגם החזר כספי מלא", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreBonus(tt.benefits)
			if got != tt.want {
				t.Errorf("scoreBonus(%q) = %d, want %d", tt.benefits, got, tt.want)
			}
		})
	}
}

func TestScoreGracefulDegradationAllNil(t *testing.T) {
	scorer := newScorer()

	plan := domain.Plan{Company: "bare", Category: domain.CategoryCellular, PlanName: "חבילה"}
	score := scorer.Score(plan, nil) // empty catalog, fallback baseline

	// Price 0 against the 50 fallback average
	if score.PriceScore != 100 {
		t.Errorf("PriceScore = %d, want 100", score.PriceScore)
	}
	if score.PercentFromAverage != 100 {
		t.Errorf("PercentFromAverage = %d, want 100", score.PercentFromAverage)
	}
	if score.BonusScore != 0 {
		t.Errorf("BonusScore = %d, want 0", score.BonusScore)
	}
	if score.Total < 0 || score.Total > 100 {
		t.Errorf("Total = %d, out of [0,100]", score.Total)
	}
	if len(score.WhyChoose) == 0 {
		t.Error("WhyChoose is empty, want at least one reason")
	}
}

func TestWhyChooseFallbackAndCap(t *testing.T) {
	scorer := newScorer()
	catalog := flatCatalog(domain.CategoryInternet, 100)

	// Nothing notable: generic fallback reason
	plain := domain.Plan{Company: "x", Category: domain.CategoryInternet, PlanName: "plain", MonthlyPrice: price(100)}
	score := scorer.Score(plain, catalog)
	if len(score.WhyChoose) != 1 || score.WhyChoose[0] != "standard plan at a reasonable price" {
		t.Errorf("WhyChoose = %v, want the generic fallback", score.WhyChoose)
	}

	// Everything notable: capped at 3
	loaded := domain.Plan{
		Company:        "y",
		Category:       domain.CategoryInternet,
		PlanName:       "סיבים ללא התחייבות",
		MonthlyPrice:   price(60),
		CommitmentText: text("ללא התחייבות"),
		BenefitsText:   text("מתנה: החזר כספי והתקנה חינם"),
	}
	score = scorer.Score(loaded, catalog)
	if len(score.WhyChoose) != 3 {
		t.Errorf("WhyChoose = %v, want exactly 3 entries", score.WhyChoose)
	}
}

func TestBestForCap(t *testing.T) {
	scorer := newScorer()
	catalog := flatCatalog(domain.CategoryCellular, 100)

	plan := domain.Plan{
		Company:        "x",
		Category:       domain.CategoryCellular,
		PlanName:       "5G ללא הגבלה משפחתי לעסק",
		MonthlyPrice:   price(40),
		CommitmentText: text("ללא התחייבות"),
		BenefitsText:   text("נטפליקס וספורט כלולים בחבילה"),
	}

	score := scorer.Score(plan, catalog)
	if len(score.BestFor) != 2 {
		t.Errorf("BestFor = %v, want exactly 2 entries", score.BestFor)
	}
}

func TestScoreDeterminism(t *testing.T) {
	scorer := newScorer()
	catalog := flatCatalog(domain.CategoryTV, 150)

	plan := domain.Plan{
		Company:      "tvco",
		Category:     domain.CategoryTV,
		PlanName:     "חבילת ספורט",
		MonthlyPrice: price(120),
		BenefitsText: text("250 ערוצים, ערוצי ספורט, איכות 4K"),
	}

	first := scorer.Score(plan, catalog)
	second := scorer.Score(plan, catalog)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scoring differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
