package extract

import (
	"strconv"
	"strings"

	"github.com/agroclim/eto-service/internal/domain"
)

// fieldRule maps a set of co-occurring label keywords to one observation
// field. A label matches only when every keyword is a substring of its
// normalized text: requiring both a quantity keyword ("θερμοκρασ") and a
// qualifier ("μεσ"/"ελαχιστ"/"μεγιστ") prevents "Ελάχιστη Θερμοκρασία"
// from being mistaken for the mean. Keywords are stems, because label
// phrasing and grammatical gender vary across page variants.
//
// The table is ordered; the first rule whose field is still unset and
// whose keywords all match a label claims that label's value. New dialect
// vocabularies extend the table without touching evaluation logic.
type fieldRule struct {
	keywords []string
	assign   func(*domain.WeatherObservation, float64, string)
}

var tableRules = []fieldRule{
	{
		keywords: []string{"θερμοκρασ", "ελαχιστ"},
		assign: func(o *domain.WeatherObservation, v float64, _ string) {
			if o.TempMinC == nil {
				o.TempMinC = domain.Float(v)
			}
		},
	},
	{
		keywords: []string{"θερμοκρασ", "μεγιστ"},
		assign: func(o *domain.WeatherObservation, v float64, _ string) {
			if o.TempMaxC == nil {
				o.TempMaxC = domain.Float(v)
			}
		},
	},
	{
		keywords: []string{"θερμοκρασ", "μεσ"},
		assign: func(o *domain.WeatherObservation, v float64, _ string) {
			if o.TempMeanC == nil {
				o.TempMeanC = domain.Float(v)
			}
		},
	},
	{
		keywords: []string{"υγρασ", "μεσ"},
		assign: func(o *domain.WeatherObservation, v float64, _ string) {
			if o.RelHumidityPct == nil {
				o.RelHumidityPct = domain.Float(v)
			}
		},
	},
	{
		keywords: []string{"ανεμ", "μεσ"},
		assign: func(o *domain.WeatherObservation, v float64, cell string) {
			if o.WindSpeedMS != nil {
				return
			}
			if strings.Contains(cell, "km/h") || strings.Contains(cell, "χλμ") {
				v = domain.KmhToMS(v)
			}
			o.WindSpeedMS = domain.Float(v)
		},
	},
	{
		keywords: []string{"ακτινοβολ", "ηλιακ"},
		assign:   assignRadiation,
	},
	{
		keywords: []string{"ακτινοβολ", "ολικ"},
		assign:   assignRadiation,
	},
}

// assignRadiation normalizes the radiation unit declared in the value cell
// to MJ/m²/day. Station pages report instantaneous W/m²; some monthly
// summaries report Wh/m². A cell already in MJ passes through.
func assignRadiation(o *domain.WeatherObservation, v float64, cell string) {
	if o.SolarRadiationMJ != nil {
		return
	}
	switch {
	case strings.Contains(cell, "mj"):
		// already MJ/m²/day
	case strings.Contains(cell, "wh/m"):
		v = domain.WattHoursToMJ(v)
	default:
		v = domain.WattsToMJ(v)
	}
	o.SolarRadiationMJ = domain.Float(v)
}

// matchesAll reports whether every keyword occurs in the normalized label.
func matchesAll(normalizedLabel string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(normalizedLabel, kw) {
			return false
		}
	}
	return true
}

// extractNumber strips every rune that is not a digit or a period and
// parses the remainder as a float. A label whose value cell has no
// convertible numeric payload yields no field, never an error.
func extractNumber(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
