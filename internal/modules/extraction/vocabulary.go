package extraction

import (
	"regexp"
	"strconv"

	"github.com/switchup/plan-engine/internal/domain"
)

// rule binds one free-text pattern to the TechnicalSpecs field it populates.
// Rules are evaluated in order; setters for mutually exclusive fields
// keep the first match and ignore later ones (5G is checked before 4G).
type rule struct {
	pattern *regexp.Regexp
	apply   func(s *TechnicalSpecs, m []string)
}

// vocabulary is the category-scoped heuristic table. Provider wording is a
// mix of Hebrew and English, so each pattern carries both spellings.
var vocabulary = map[domain.Category][]rule{
	domain.CategoryCellular: {
		{
			pattern: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:GB|ג'יגה|גיגה)`),
			apply: func(s *TechnicalSpecs, m []string) {
				if s.DataGB == nil {
					v := parseFloat(m[1])
					s.DataGB = &v
				}
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)ללא הגבלה|בלתי מוגבל|unlimited`),
			apply: func(s *TechnicalSpecs, m []string) {
				s.UnlimitedData = true
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)5G`),
			apply: func(s *TechnicalSpecs, m []string) {
				setString(&s.Generation, "5G")
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)4G|LTE`),
			apply: func(s *TechnicalSpecs, m []string) {
				setString(&s.Generation, "4G")
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)e-?sim`),
			apply: func(s *TechnicalSpecs, m []string) {
				s.ESIM = true
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)(\d+)\s*(?:דקות\s*לחו"ל|international\s*min)`),
			apply: func(s *TechnicalSpecs, m []string) {
				if s.IntlMinutes == nil {
					v := parseInt(m[1])
					s.IntlMinutes = &v
				}
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)שיחות ללא הגבלה|unlimited calls`),
			apply: func(s *TechnicalSpecs, m []string) {
				setString(&s.CallMinutes, "unlimited")
			},
		},
	},

	domain.CategoryInternet: {
		{
			pattern: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:mbps|מגהביט|מגה)`),
			apply: func(s *TechnicalSpecs, m []string) {
				if s.SpeedMbps == nil {
					v := parseFloat(m[1])
					s.SpeedMbps = &v
				}
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)סיב אופטי|סיבים|fiber|אופטי`),
			apply: func(s *TechnicalSpecs, m []string) {
				setString(&s.Technology, "fiber")
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)נחושת|copper|ADSL|VDSL`),
			apply: func(s *TechnicalSpecs, m []string) {
				setString(&s.Technology, "copper")
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)(?:נתב|ראוטר)\s*(?:חינם|מתנה|כלול)|free router|router included`),
			apply: func(s *TechnicalSpecs, m []string) {
				s.RouterIncluded = true
			},
		},
	},

	domain.CategoryTV: {
		{
			pattern: regexp.MustCompile(`(?i)(\d+)\s*(?:ערוצים|channels)`),
			apply: func(s *TechnicalSpecs, m []string) {
				if s.Channels == nil {
					v := parseInt(m[1])
					s.Channels = &v
				}
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)ספורט|sport`),
			apply: func(s *TechnicalSpecs, m []string) {
				s.Sports = true
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)ילדים|kids|children`),
			apply: func(s *TechnicalSpecs, m []string) {
				s.Kids = true
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)VOD|הקלטות|ספריית תכנים|on.?demand`),
			apply: func(s *TechnicalSpecs, m []string) {
				s.VOD = true
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)4K|UHD`),
			apply: func(s *TechnicalSpecs, m []string) {
				setString(&s.PictureQuality, "4K")
			},
		},
		{
			pattern: regexp.MustCompile(`\bHD\b`),
			apply: func(s *TechnicalSpecs, m []string) {
				setString(&s.PictureQuality, "HD")
			},
		},
	},

	domain.CategoryElectricity: {
		{
			pattern: regexp.MustCompile(`(?i)אנרגיה ירוקה|ירוק|מתחדשת|green|solar|סולארי`),
			apply: func(s *TechnicalSpecs, m []string) {
				setString(&s.EnergyType, "green")
			},
		},
		{
			pattern: regexp.MustCompile(`(?i)תעריף לילה|שעות הלילה|חשמל בלילה|night rate|day.?night`),
			apply: func(s *TechnicalSpecs, m []string) {
				setString(&s.TariffType, "day-night")
			},
		},
	},

	// Streaming plans carry no structured vocabulary; only free-text
	// fragments survive extraction.
	domain.CategoryStreaming: {},
}

func setString(field **string, value string) {
	if *field == nil {
		v := value
		*field = &v
	}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
