package domain

import (
	"fmt"
	"strings"
)

// Category identifies a household utility service category.
type Category string

const (
	CategoryElectricity Category = "electricity"
	CategoryCellular    Category = "cellular"
	CategoryInternet    Category = "internet"
	CategoryTV          Category = "tv"
	CategoryStreaming   Category = "streaming"
)

// Categories lists all known categories in a fixed order.
func Categories() []Category {
	return []Category{
		CategoryElectricity,
		CategoryCellular,
		CategoryInternet,
		CategoryTV,
		CategoryStreaming,
	}
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectricity, CategoryCellular, CategoryInternet, CategoryTV, CategoryStreaming:
		return true
	}
	return false
}

// Plan represents a provider's offering as collected from the catalog.
// Price, commitment and benefits are optional - provider data is noisy
// free text and usage-based tariffs have no fixed monthly price.
type Plan struct {
	ID             string   `json:"id"`
	Company        string   `json:"company"`
	Category       Category `json:"category"`
	PlanName       string   `json:"plan_name"`
	MonthlyPrice   *float64 `json:"monthly_price,omitempty"`
	CommitmentText *string  `json:"commitment_text,omitempty"`
	BenefitsText   *string  `json:"benefits_text,omitempty"`
}

// Price returns the monthly price, or 0 when unknown.
func (p Plan) Price() float64 {
	if p.MonthlyPrice == nil {
		return 0
	}
	return *p.MonthlyPrice
}

// HasPrice reports whether the plan carries a usable monthly price.
func (p Plan) HasPrice() bool {
	return p.MonthlyPrice != nil && *p.MonthlyPrice > 0
}

// Commitment returns the commitment free text, or "" when absent.
func (p Plan) Commitment() string {
	if p.CommitmentText == nil {
		return ""
	}
	return *p.CommitmentText
}

// Benefits returns the benefits free text, or "" when absent.
func (p Plan) Benefits() string {
	if p.BenefitsText == nil {
		return ""
	}
	return *p.BenefitsText
}
