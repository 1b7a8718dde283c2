package strategies

import (
	"github.com/switchup/plan-engine/internal/domain"
	"github.com/switchup/plan-engine/internal/modules/scoring"
)

// Profile carries the user hints a ranking call may take into account
type Profile struct {
	Category domain.Category `json:"category"`
	Budget   float64         `json:"budget"`
}

// Candidate is one plan with every precomputed signal the strategies rank by.
// Popularity and Savings are deterministic proxies derived from the catalog
// snapshot (price standing within the category and feature richness), so
// repeated ranking calls over one snapshot are identical.
type Candidate struct {
	Plan         domain.Plan
	Score        scoring.ValueScore
	FeatureCount int
	Popularity   float64 // 0-100 standing within the category
	Savings      float64 // ILS/month below the category average
}

// RankedPlan is one selected recommendation with its presentation labels
type RankedPlan struct {
	Plan   domain.Plan        `json:"plan"`
	Score  scoring.ValueScore `json:"score"`
	Reason string             `json:"reason"`
	Badge  string             `json:"badge"`
}

// Strategy selects and labels the top candidates under one ranking policy
type Strategy interface {
	Name() string
	Rank(candidates []Candidate, profile *Profile, topN int) []RankedPlan
}
