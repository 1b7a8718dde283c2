package scoring

// Sub-score weights for the composite value score
const (
	WeightPrice       = 0.40
	WeightFeatures    = 0.30
	WeightFlexibility = 0.20
	WeightBonus       = 0.10
)

// Deal quality band edges, in percent-from-average points.
// Bands are contiguous: excellent >= 20 > good >= 5 > fair >= -10 > expensive.
const (
	ExcellentThreshold = 20
	GoodThreshold      = 5
	FairThreshold      = -10
)

// Presentation caps
const (
	MaxWhyChoose = 3
	MaxBestFor   = 2
)

// Benefits text at or below this many runes carries no transfer bonus
const MinBonusTextRunes = 10

// Keyword increments for the features sub-score
const (
	PremiumKeywordPoints = 10
	ValueKeywordPoints   = 8
	FeaturesBase         = 50
)
