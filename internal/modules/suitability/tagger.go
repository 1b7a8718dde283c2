package suitability

import (
	"github.com/switchup/plan-engine/internal/domain"
	"github.com/switchup/plan-engine/internal/modules/extraction"
	"github.com/switchup/plan-engine/internal/modules/scoring"
)

// Tier thresholds for category rules
const (
	heavyDataGB    = 100
	largeHomeMbps  = 500
	remoteWorkMbps = 200
)

// Tagger derives short audience tags from extracted specs and the plan's
// market position. Rules run in a fixed order and each contributes at most
// one tag, so the result is deduplicated by construction.
type Tagger struct{}

// NewTagger creates a new suitability tagger
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tags returns the audience tags for a plan
func (t *Tagger) Tags(specs extraction.TechnicalSpecs, category domain.Category, quality scoring.DealQuality) []string {
	tags := []string{}

	if quality == scoring.DealExcellent {
		tags = append(tags, "great for budget-conscious households")
	}

	switch category {
	case domain.CategoryCellular:
		if specs.UnlimitedData || (specs.DataGB != nil && *specs.DataGB >= heavyDataGB) {
			tags = append(tags, "heavy data users")
		}
		if specs.IntlMinutes != nil {
			tags = append(tags, "frequent travelers")
		}
		if specs.ESIM {
			tags = append(tags, "digital nomads")
		}
		if specs.Generation != nil && *specs.Generation == "5G" {
			tags = append(tags, "early technology adopters")
		}

	case domain.CategoryInternet:
		if specs.SpeedMbps != nil {
			switch {
			case *specs.SpeedMbps >= largeHomeMbps:
				tags = append(tags, "large households with many devices")
			case *specs.SpeedMbps >= remoteWorkMbps:
				tags = append(tags, "remote workers")
			}
		}
		if specs.Technology != nil && *specs.Technology == "fiber" {
			tags = append(tags, "fiber-grade streaming and gaming")
		}
		if specs.RouterIncluded {
			tags = append(tags, "movers who need equipment included")
		}

	case domain.CategoryTV:
		if specs.Sports {
			tags = append(tags, "sports fans")
		}
		if specs.Kids {
			tags = append(tags, "families with children")
		}
		if specs.PictureQuality != nil && *specs.PictureQuality == "4K" {
			tags = append(tags, "home cinema enthusiasts")
		}

	case domain.CategoryElectricity, domain.CategoryStreaming:
		// No category-specific rules beyond the budget tag.
	}

	return tags
}
