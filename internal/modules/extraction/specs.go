package extraction

// TechnicalSpecs holds the structured attributes recovered from a plan's
// free-text benefits description. All fields are optional; an empty value
// means the text carried no recognizable hint for it.
type TechnicalSpecs struct {
	// Cellular
	DataGB        *float64 `json:"data_gb,omitempty"`
	UnlimitedData bool     `json:"unlimited_data,omitempty"`
	CallMinutes   *string  `json:"call_minutes,omitempty"`
	IntlMinutes   *int     `json:"intl_minutes,omitempty"`
	Generation    *string  `json:"generation,omitempty"` // "5G" or "4G"
	ESIM          bool     `json:"esim,omitempty"`

	// Internet
	SpeedMbps      *float64 `json:"speed_mbps,omitempty"`
	Technology     *string  `json:"technology,omitempty"` // "fiber" or "copper"
	RouterIncluded bool     `json:"router_included,omitempty"`

	// TV
	Channels       *int    `json:"channels,omitempty"`
	Sports         bool    `json:"sports,omitempty"`
	Kids           bool    `json:"kids,omitempty"`
	VOD            bool    `json:"vod,omitempty"`
	PictureQuality *string `json:"picture_quality,omitempty"` // "4K" or "HD"

	// Electricity
	EnergyType *string `json:"energy_type,omitempty"` // "green"
	TariffType *string `json:"tariff_type,omitempty"` // "day-night"

	// Short free-text fragments worth surfacing as-is
	AdditionalFeatures []string `json:"additional_features"`
}

// FeatureCount returns how many structured attributes were recognized.
// Additional free-text fragments are not counted.
func (s TechnicalSpecs) FeatureCount() int {
	count := 0

	if s.DataGB != nil {
		count++
	}
	if s.UnlimitedData {
		count++
	}
	if s.CallMinutes != nil {
		count++
	}
	if s.IntlMinutes != nil {
		count++
	}
	if s.Generation != nil {
		count++
	}
	if s.ESIM {
		count++
	}
	if s.SpeedMbps != nil {
		count++
	}
	if s.Technology != nil {
		count++
	}
	if s.RouterIncluded {
		count++
	}
	if s.Channels != nil {
		count++
	}
	if s.Sports {
		count++
	}
	if s.Kids {
		count++
	}
	if s.VOD {
		count++
	}
	if s.PictureQuality != nil {
		count++
	}
	if s.EnergyType != nil {
		count++
	}
	if s.TariffType != nil {
		count++
	}

	return count
}
