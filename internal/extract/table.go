// Package extract parses semi-structured station documents into normalized
// weather observations. Two dialects are supported: Greek-labelled HTML
// tables and fixed-width monthly reports. Extraction is best effort; fields
// the parser cannot locate are left absent rather than zeroed.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/agroclim/eto-service/internal/domain"
)

// ParseTable extracts an observation from an HTML station page in the
// table dialect: rows where one cell holds a Greek-language label and the
// adjacent cell holds a value with a trailing unit token.
//
// Matching walks label/value cell pairs in document order against the
// ordered rule table; the first matching row wins when labels repeat.
// Missing or unconvertible individual fields are silent absences. Only
// empty raw input is an error.
func ParseTable(raw string) (domain.WeatherObservation, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.WeatherObservation{}, &domain.MalformedSourceError{Reason: "empty table document"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return domain.WeatherObservation{}, &domain.MalformedSourceError{Reason: "unreadable table document"}
	}

	var obs domain.WeatherObservation

	cells := doc.Find("td")
	cells.Each(func(i int, label *goquery.Selection) {
		next := cells.Eq(i + 1)
		if next.Length() == 0 {
			return
		}

		labelText := normalizeLabel(strings.TrimSpace(label.Text()))
		if labelText == "" {
			return
		}

		for _, rule := range tableRules {
			if !matchesAll(labelText, rule.keywords) {
				continue
			}
			cellText := normalizeLabel(strings.TrimSpace(next.Text()))
			value, ok := extractNumber(cellText)
			if !ok {
				continue
			}
			rule.assign(&obs, value, cellText)
		}
	})

	return obs, nil
}
