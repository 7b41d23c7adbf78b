package domain

// WeatherObservation is a normalized daily measurement record. Every field
// is independently optional: nil means the value was never observed. The
// extractor never fabricates a value it did not see; formula-level defaults
// (documented per formula) are applied only at evaluation time.
//
// Units are fixed at this boundary: temperatures in °C, humidity in percent,
// wind in m/s, radiation in MJ/m²/day, latitude in signed decimal degrees
// (positive north), altitude in meters.
type WeatherObservation struct {
	TempMeanC        *float64 `json:"temp_mean_c,omitempty"`
	TempMinC         *float64 `json:"temp_min_c,omitempty"`
	TempMaxC         *float64 `json:"temp_max_c,omitempty"`
	RelHumidityPct   *float64 `json:"relative_humidity_pct,omitempty"`
	WindSpeedMS      *float64 `json:"wind_speed_ms,omitempty"`
	SolarRadiationMJ *float64 `json:"solar_radiation_mj_m2_day,omitempty"`
	LatitudeDeg      *float64 `json:"latitude_deg,omitempty"`
	DayOfYear        *int     `json:"day_of_year,omitempty"`
	AltitudeM        *float64 `json:"altitude_m,omitempty"`
}

// Empty reports whether no field at all was populated.
func (o WeatherObservation) Empty() bool {
	return o.TempMeanC == nil && o.TempMinC == nil && o.TempMaxC == nil &&
		o.RelHumidityPct == nil && o.WindSpeedMS == nil && o.SolarRadiationMJ == nil &&
		o.LatitudeDeg == nil && o.DayOfYear == nil && o.AltitudeM == nil
}

// Float returns a pointer to v, for building observations literally.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
