package extract

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/agroclim/eto-service/internal/domain"
)

// Plausible daily air temperature bounds (°C) for the fixed-width report
// heuristic. Column layout in monthly reports is not strictly fixed (an
// average column may or may not be present), so candidate values are
// filtered to this range and the extremes among survivors are taken as the
// daily high and low. This is a best-effort heuristic, not a guaranteed
// parse.
const (
	plausibleTempMin = -30.0
	plausibleTempMax = 60.0
)

// ParseDailyRow extracts min/max/mean temperature for one day of month
// from a fixed-width monthly report. The target line is the one whose
// leading token equals the requested day (zero-padded or not); all signed
// numeric substrings on the rest of that line are candidates.
//
// Among candidates within the plausible range the maximum becomes the
// daily high and the minimum the daily low; the mean is their midpoint,
// not a reported average. A missing line or fewer than two plausible
// candidates yields an empty observation ("no data"), not an error. Only
// empty raw input is an error.
func ParseDailyRow(raw string, dayOfMonth int) (domain.WeatherObservation, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.WeatherObservation{}, &domain.MalformedSourceError{Reason: "empty report document"}
	}

	line, ok := findDayLine(raw, dayOfMonth)
	if !ok {
		return domain.WeatherObservation{}, nil
	}

	candidates := plausibleTemperatures(numericTokens(line))
	if len(candidates) < 2 {
		return domain.WeatherObservation{}, nil
	}

	tMax, tMin := candidates[0], candidates[0]
	for _, v := range candidates[1:] {
		if v > tMax {
			tMax = v
		}
		if v < tMin {
			tMin = v
		}
	}

	return domain.WeatherObservation{
		TempMaxC:  domain.Float(tMax),
		TempMinC:  domain.Float(tMin),
		TempMeanC: domain.Float((tMax + tMin) / 2),
	}, nil
}

// findDayLine returns the remainder (after the day token) of the first
// line whose leading token parses to the requested day number.
func findDayLine(raw string, day int) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		first, rest := line, ""
		if idx := strings.IndexAny(line, " \t"); idx >= 0 {
			first, rest = line[:idx], line[idx+1:]
		}
		n, err := strconv.Atoi(first)
		if err != nil || n != day {
			continue
		}
		return rest, true
	}
	return "", false
}

// numericTokens collects every signed integer or decimal substring.
func numericTokens(line string) []float64 {
	var out []float64
	for _, m := range numberRe.FindAllString(line, -1) {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func plausibleTemperatures(values []float64) []float64 {
	var out []float64
	for _, v := range values {
		if v >= plausibleTempMin && v <= plausibleTempMax {
			out = append(out, v)
		}
	}
	return out
}
