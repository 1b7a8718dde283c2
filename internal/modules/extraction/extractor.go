package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/switchup/plan-engine/internal/domain"
)

const (
	maxAdditionalFeatures = 5
	minFragmentRunes      = 6
	maxFragmentRunes      = 99
)

var fragmentSplitter = regexp.MustCompile(`[,.\n]`)

// Extractor derives structured technical specs from free-text plan
// descriptions using the category-scoped vocabulary table.
type Extractor struct{}

// New creates a new feature extractor
func New() *Extractor {
	return &Extractor{}
}

// Extract parses the benefits free text into TechnicalSpecs. Unrecognized or
// empty text degrades to a specs object with empty additional features;
// extraction never fails.
func (e *Extractor) Extract(benefitsText string, category domain.Category) TechnicalSpecs {
	specs := TechnicalSpecs{AdditionalFeatures: []string{}}

	text := strings.TrimSpace(benefitsText)
	if text == "" {
		return specs
	}

	for _, r := range vocabulary[category] {
		if m := r.pattern.FindStringSubmatch(text); m != nil {
			r.apply(&specs, m)
		}
	}

	specs.AdditionalFeatures = extractFragments(text)
	return specs
}

// extractFragments splits the raw text into short display-ready fragments:
// comma/period/newline separated, trimmed, 6-99 runes, at most 5 kept.
func extractFragments(text string) []string {
	fragments := []string{}

	for _, part := range fragmentSplitter.Split(text, -1) {
		part = strings.TrimSpace(part)
		n := utf8.RuneCountInString(part)
		if n < minFragmentRunes || n > maxFragmentRunes {
			continue
		}

		fragments = append(fragments, part)
		if len(fragments) == maxAdditionalFeatures {
			break
		}
	}

	return fragments
}
