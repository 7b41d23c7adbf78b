package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

	// latitudeRe matches the yearly header declaration used by current
	// reports, e.g. "Latitude: 35.50000 N".
	latitudeRe = regexp.MustCompile(`(?i)Latitude:\s*(\d+(?:\.\d+)?)\s*([NS])`)

	// latitudeDegMinRe matches the older header form, e.g.
	// "LAT: 35 deg 30 min". It carries no hemisphere letter; the station
	// network is Greek, so north is assumed.
	latitudeDegMinRe = regexp.MustCompile(`(?i)LAT:\s*(\d+(?:\.\d+)?)\s*deg\s*(\d+(?:\.\d+)?)\s*min`)
)

// ParseLatitude locates a latitude declaration in a yearly report header
// and converts it to signed decimal degrees, positive north. Absence of a
// parseable declaration yields ok=false; the caller must then supply a
// latitude manually.
func ParseLatitude(raw string) (float64, bool) {
	if m := latitudeRe.FindStringSubmatch(raw); m != nil {
		deg, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		if strings.EqualFold(m[2], "S") {
			deg = -deg
		}
		return deg, true
	}

	if m := latitudeDegMinRe.FindStringSubmatch(raw); m != nil {
		deg, errD := strconv.ParseFloat(m[1], 64)
		min, errM := strconv.ParseFloat(m[2], 64)
		if errD != nil || errM != nil {
			return 0, false
		}
		return deg + min/60, true
	}

	return 0, false
}
