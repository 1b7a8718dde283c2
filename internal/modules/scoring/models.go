package scoring

// DealQuality is the coarse label for a plan's price vs. the category average
type DealQuality string

const (
	DealExcellent DealQuality = "excellent"
	DealGood      DealQuality = "good"
	DealFair      DealQuality = "fair"
	DealExpensive DealQuality = "expensive"
)

// DealQualityFor maps a percent-from-average value into its band
func DealQualityFor(percentFromAverage int) DealQuality {
	switch {
	case percentFromAverage >= ExcellentThreshold:
		return DealExcellent
	case percentFromAverage >= GoodThreshold:
		return DealGood
	case percentFromAverage >= FairThreshold:
		return DealFair
	default:
		return DealExpensive
	}
}

// ValueScore is the full scoring result for one plan within one catalog
// snapshot. All scores are 0-100 integers.
type ValueScore struct {
	Total              int         `json:"total"`
	PriceScore         int         `json:"price_score"`
	FeaturesScore      int         `json:"features_score"`
	FlexibilityScore   int         `json:"flexibility_score"`
	BonusScore         int         `json:"bonus_score"`
	DealQuality        DealQuality `json:"deal_quality"`
	PercentFromAverage int         `json:"percent_from_average"`
	WhyChoose          []string    `json:"why_choose"`
	BestFor            []string    `json:"best_for"`
}
