package scorers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/switchup/plan-engine/internal/domain"
	"github.com/switchup/plan-engine/internal/modules/market"
	"github.com/switchup/plan-engine/internal/modules/scoring"
)

// Marker patterns shared by the sub-scores. Catalog wording mixes Hebrew and
// English, so every marker carries both spellings.
var (
	marker5G        = regexp.MustCompile(`(?i)5G`)
	markerFiber     = regexp.MustCompile(`(?i)סיבים|סיב אופטי|fiber`)
	markerUnlimited = regexp.MustCompile(`(?i)ללא הגבלה|unlimited`)

	valueMarkers = []*regexp.Regexp{
		regexp.MustCompile(`(?i)netflix|נטפליקס`),
		regexp.MustCompile(`(?i)disney|דיסני`),
		regexp.MustCompile(`(?i)spotify|ספוטיפיי`),
		regexp.MustCompile(`(?i)ספורט|sport`),
	}

	markerNoCommit = regexp.MustCompile(`(?i)ללא התחייבות|no commitment|without commitment`)
	markerTwoYear  = regexp.MustCompile(`(?i)24 חודשים|שנתיים|24 month|two[ -]?year`)
	markerAnnual   = regexp.MustCompile(`(?i)12 חודשים|שנה|12 month|annual|year`)

	markerGift   = regexp.MustCompile(`(?i)מתנה|חינם|free|gift`)
	markerRefund = regexp.MustCompile(`(?i)החזר|זיכוי|refund|credit|cashback`)

	markerFamily   = regexp.MustCompile(`(?i)משפחה|משפחתי|family`)
	markerBusiness = regexp.MustCompile(`(?i)עסק|business`)
)

// ValueScorer derives the 0-100 composite value score of a plan relative to
// its category's market baseline. Pure: every call recomputes from the given
// snapshot and malformed inputs degrade to defaults instead of erroring.
type ValueScorer struct {
	baseline *market.BaselineCalculator
}

// NewValueScorer creates a new value scorer
func NewValueScorer(baseline *market.BaselineCalculator) *ValueScorer {
	return &ValueScorer{baseline: baseline}
}

// Score calculates the complete value score for one plan within one catalog
// snapshot. A plan with no known price is scored with price 0 rather than
// rejected - usage-based tariffs are a normal catalog occurrence.
func (s *ValueScorer) Score(plan domain.Plan, catalog []domain.Plan) scoring.ValueScore {
	avg := s.baseline.Average(catalog, plan.Category)
	price := plan.Price()

	priceScore := scorePriceRatio(price / avg)
	featuresScore := scoreFeatures(plan.PlanName, plan.Benefits())
	flexibilityScore := scoreFlexibility(plan.Commitment(), plan.PlanName)
	bonusScore := scoreBonus(plan.Benefits())

	total := roundToInt(
		float64(priceScore)*scoring.WeightPrice +
			float64(featuresScore)*scoring.WeightFeatures +
			float64(flexibilityScore)*scoring.WeightFlexibility +
			float64(bonusScore)*scoring.WeightBonus)

	percentFromAverage := roundToInt((avg - price) / avg * 100)

	score := scoring.ValueScore{
		Total:              clamp(total, 0, 100),
		PriceScore:         priceScore,
		FeaturesScore:      featuresScore,
		FlexibilityScore:   flexibilityScore,
		BonusScore:         bonusScore,
		DealQuality:        scoring.DealQualityFor(percentFromAverage),
		PercentFromAverage: percentFromAverage,
	}

	score.WhyChoose = buildWhyChoose(plan, score)
	score.BestFor = buildBestFor(plan, score)

	return score
}

// scorePriceRatio maps price/average into the fixed step function.
// A missing price yields ratio 0 and therefore the top step.
func scorePriceRatio(ratio float64) int {
	switch {
	case ratio <= 0.70:
		return 100
	case ratio <= 0.85:
		return 85
	case ratio <= 1.00:
		return 70
	case ratio <= 1.15:
		return 50
	case ratio <= 1.30:
		return 30
	default:
		return 15
	}
}

// scoreFeatures rewards premium technology markers in the plan name and
// value-add markers (bundled streaming, sports) in name or benefits.
func scoreFeatures(planName, benefits string) int {
	score := scoring.FeaturesBase

	for _, premium := range []*regexp.Regexp{marker5G, markerFiber, markerUnlimited} {
		if premium.MatchString(planName) {
			score += scoring.PremiumKeywordPoints
		}
	}

	combined := planName + " " + benefits
	for _, value := range valueMarkers {
		if value.MatchString(combined) {
			score += scoring.ValueKeywordPoints
		}
	}

	return clamp(score, 0, 100)
}

// scoreFlexibility reads the contractual lock-in from commitment text or plan
// name. Unknown terms sit at the neutral 50. Two-year markers are checked
// before annual ones so "two-year" never matches the annual "year" marker.
func scoreFlexibility(commitment, planName string) int {
	text := commitment + " " + planName

	switch {
	case markerNoCommit.MatchString(text):
		return 100
	case markerTwoYear.MatchString(text):
		return 20
	case markerAnnual.MatchString(text):
		return 40
	default:
		return 50
	}
}

// scoreBonus reads transfer incentives from the benefits text. Texts of 10
// runes or fewer are treated as carrying no real incentive.
func scoreBonus(benefits string) int {
	if utf8.RuneCountInString(strings.TrimSpace(benefits)) <= scoring.MinBonusTextRunes {
		return 0
	}

	score := 50
	if markerGift.MatchString(benefits) {
		score += 25
	}
	if markerRefund.MatchString(benefits) {
		score += 25
	}

	return clamp(score, 0, 100)
}

// buildWhyChoose assembles up to MaxWhyChoose justification strings in fixed
// priority order, falling back to a generic reason when nothing applies.
func buildWhyChoose(plan domain.Plan, score scoring.ValueScore) []string {
	reasons := []string{}

	if score.PercentFromAverage >= 15 {
		reasons = append(reasons, fmt.Sprintf("%d%% below category average", score.PercentFromAverage))
	}
	if score.FlexibilityScore >= 80 {
		reasons = append(reasons, "no-commitment flexibility")
	}
	if marker5G.MatchString(plan.PlanName) {
		reasons = append(reasons, "includes 5G at no extra cost")
	}
	if markerFiber.MatchString(plan.PlanName) {
		reasons = append(reasons, "high-speed fiber-equivalent access")
	}
	if strings.TrimSpace(plan.Benefits()) != "" {
		reasons = append(reasons, "includes transfer incentives")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "standard plan at a reasonable price")
	}
	if len(reasons) > scoring.MaxWhyChoose {
		reasons = reasons[:scoring.MaxWhyChoose]
	}

	return reasons
}

// buildBestFor assembles up to MaxBestFor audience tags
func buildBestFor(plan domain.Plan, score scoring.ValueScore) []string {
	audiences := []string{}

	if score.PriceScore >= 80 {
		audiences = append(audiences, "budget-constrained users")
	}
	if score.FeaturesScore >= 80 {
		audiences = append(audiences, "heavy users")
	}
	if score.FlexibilityScore >= 80 {
		audiences = append(audiences, "maximum flexibility seekers")
	}
	if markerFamily.MatchString(plan.PlanName) {
		audiences = append(audiences, "families")
	}
	if markerBusiness.MatchString(plan.PlanName) {
		audiences = append(audiences, "businesses")
	}

	if len(audiences) > scoring.MaxBestFor {
		audiences = audiences[:scoring.MaxBestFor]
	}

	return audiences
}
