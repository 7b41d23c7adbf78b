package domain

import (
	"math"
)

// Defaults applied at evaluation time. These are documented approximations,
// not measured values: a result computed with them is a degraded-accuracy
// estimate.
const (
	defaultAltitudeM  = 50.0
	tempSpreadDefault = 5.0 // Tmin/Tmax default to mean ∓/± this spread

	simplifiedFallback = 5.0
	simplifiedFloor    = 0.5
	simplifiedCeil     = 10.0
)

// Evaluate runs the selected formula against an observation. All formulas
// are pure: deterministic, no hidden state, safe to re-evaluate.
func Evaluate(formula Formula, obs WeatherObservation) (EtoResult, error) {
	switch formula {
	case PenmanMonteithFAO:
		return EvaluatePenmanMonteith(obs)
	case SimplifiedEmpirical:
		return EvaluateSimplified(obs), nil
	case HargreavesSamani:
		return EvaluateHargreaves(obs)
	default:
		return EtoResult{}, &ComputationError{Formula: formula, Reason: "unknown formula"}
	}
}

// EvaluatePenmanMonteith computes ETo via the FAO-56 standard combination
// equation. Required: mean temperature, relative humidity, wind speed (m/s)
// and solar radiation (MJ/m²/day). Tmin/Tmax default to mean±5 °C when not
// independently supplied; altitude defaults to 50 m.
func EvaluatePenmanMonteith(obs WeatherObservation) (EtoResult, error) {
	missing := missingField(PenmanMonteithFAO,
		req{"temp_mean_c", obs.TempMeanC},
		req{"relative_humidity_pct", obs.RelHumidityPct},
		req{"wind_speed_ms", obs.WindSpeedMS},
		req{"solar_radiation_mj_m2_day", obs.SolarRadiationMJ},
	)
	if missing != nil {
		return EtoResult{}, missing
	}

	tMean := *obs.TempMeanC
	if obs.TempMinC == nil {
		obs.TempMinC = Float(tMean - tempSpreadDefault)
	}
	if obs.TempMaxC == nil {
		obs.TempMaxC = Float(tMean + tempSpreadDefault)
	}
	if obs.AltitudeM == nil {
		obs.AltitudeM = Float(defaultAltitudeM)
	}

	rh := *obs.RelHumidityPct
	u2 := *obs.WindSpeedMS
	rs := *obs.SolarRadiationMJ

	esMax := saturationVaporPressure(*obs.TempMaxC)
	esMin := saturationVaporPressure(*obs.TempMinC)
	es := (esMax + esMin) / 2
	ea := (rh / 100) * es

	delta := vaporPressureSlope(tMean)
	gamma := 0.000665 * atmosphericPressure(*obs.AltitudeM)

	// Net radiation with reference-crop albedo 0.23; soil heat flux G is
	// zero at the daily time step (FAO-56 eq. 42).
	rn := (1 - 0.23) * rs
	g := 0.0

	eto := (0.408*delta*(rn-g) + gamma*(900/(tMean+273.16))*u2*(es-ea)) /
		(delta + gamma*(1+0.34*u2))

	if !isFinite(eto) {
		return EtoResult{}, &ComputationError{Formula: PenmanMonteithFAO, Reason: "non-finite result"}
	}

	return newResult(eto, PenmanMonteithFAO, obs), nil
}

// EvaluateSimplified computes a coarse empirical ETo estimate from mean
// temperature, humidity and radiation, clamped to [0.5, 10.0] mm/day.
//
// On any internal failure it substitutes a fixed 5.0 mm/day and marks the
// result with FallbackUsed. It never errors.
func EvaluateSimplified(obs WeatherObservation) EtoResult {
	if obs.TempMeanC == nil || obs.RelHumidityPct == nil || obs.SolarRadiationMJ == nil {
		res := newResult(simplifiedFallback, SimplifiedEmpirical, obs)
		res.FallbackUsed = true
		return res
	}

	tMean := *obs.TempMeanC
	rh := *obs.RelHumidityPct
	rmj := *obs.SolarRadiationMJ

	eto := (0.408*0.25*rmj + 0.07*(tMean+5)*(1-rh/100)) * 0.85
	if !isFinite(eto) {
		res := newResult(simplifiedFallback, SimplifiedEmpirical, obs)
		res.FallbackUsed = true
		return res
	}

	eto = math.Min(math.Max(eto, simplifiedFloor), simplifiedCeil)
	return newResult(eto, SimplifiedEmpirical, obs)
}

// EvaluateHargreaves computes ETo via Hargreaves–Samani. Required: min/max
// temperature, latitude and day-of-year; extraterrestrial radiation is
// computed internally, so no measured radiation, humidity or wind is
// needed. Tmax ≤ Tmin is a defined edge case returning exactly 0.0.
func EvaluateHargreaves(obs WeatherObservation) (EtoResult, error) {
	missing := missingField(HargreavesSamani,
		req{"temp_min_c", obs.TempMinC},
		req{"temp_max_c", obs.TempMaxC},
		req{"latitude_deg", obs.LatitudeDeg},
	)
	if missing != nil {
		return EtoResult{}, missing
	}
	if obs.DayOfYear == nil {
		return EtoResult{}, &ComputationError{Formula: HargreavesSamani, Reason: "missing required field day_of_year"}
	}
	if *obs.DayOfYear < 1 || *obs.DayOfYear > 366 {
		return EtoResult{}, &ComputationError{Formula: HargreavesSamani, Reason: "day_of_year out of range 1-366"}
	}

	tMin := *obs.TempMinC
	tMax := *obs.TempMaxC
	if tMax <= tMin {
		return newResult(0.0, HargreavesSamani, obs), nil
	}

	tMean := (tMax + tMin) / 2
	ra := ExtraterrestrialRadiation(*obs.LatitudeDeg, *obs.DayOfYear)

	eto := 0.0023 * (tMean + 17.8) * math.Sqrt(math.Max(tMax-tMin, 0)) * ra
	if !isFinite(eto) {
		return EtoResult{}, &ComputationError{Formula: HargreavesSamani, Reason: "non-finite result"}
	}

	return newResult(eto, HargreavesSamani, obs), nil
}

// saturationVaporPressure is FAO-56 eq. 11, kPa at temperature t °C.
func saturationVaporPressure(t float64) float64 {
	return 0.6108 * math.Exp((17.27*t)/(t+237.3))
}

// vaporPressureSlope is FAO-56 eq. 13, kPa/°C at temperature t °C.
func vaporPressureSlope(t float64) float64 {
	return (4098 * saturationVaporPressure(t)) / math.Pow(t+237.3, 2)
}

// atmosphericPressure derives pressure (kPa) from altitude (m) via the
// barometric formula.
func atmosphericPressure(altitudeM float64) float64 {
	return 101.3 * math.Pow((293-0.00652*altitudeM)/293, 5.26)
}

func newResult(value float64, formula Formula, inputs WeatherObservation) EtoResult {
	return EtoResult{
		ValueMMDay:  value,
		Formula:     formula,
		InputsUsed:  inputs,
		EvaluatedAt: clock.Now(),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type req struct {
	name  string
	value *float64
}

func missingField(formula Formula, reqs ...req) error {
	for _, r := range reqs {
		if r.value == nil {
			return &ComputationError{Formula: formula, Reason: "missing required field " + r.name}
		}
	}
	return nil
}
