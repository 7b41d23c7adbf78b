// Package domain models daily agrometeorological measurements and the
// reference evapotranspiration (ETo) formulas evaluated over them.
//
// # Data Source
//
// Observations originate either from public meteo.gr-style station pages
// (scraped and parsed by internal/extract) or from manual entry. Station
// pages come in two dialects: an HTML table with Greek-language labels
// ("Μέση Θερμοκρασία", "Μέση Υγρασία", ...) and a fixed-width monthly
// report whose daily rows begin with the day-of-month number. Neither
// dialect has a guaranteed schema; extraction is best effort and every
// observation field is optional.
//
// # Unit Conventions
//
// Temperatures are °C, humidity percent, wind m/s, solar radiation
// MJ/m²/day, latitude signed decimal degrees (positive north), altitude
// meters. Sources reporting W/m² or Wh/m² radiation convert via the fixed
// factors 0.0864 and 0.0036; km/h wind divides by 3.6. Conversions happen
// at the extraction or manual-entry boundary, never inside a formula.
//
// # Formulas
//
// Three caller-selected formulas, all pure functions:
//
//	Penman–Monteith (FAO-56): the standard combination equation. Needs
//	  mean temperature, humidity, wind and radiation. Tmin/Tmax default
//	  to mean±5 °C and altitude to 50 m when unsupplied (degraded mode).
//	Simplified Empirical: a coarse estimate from temperature, humidity
//	  and radiation, clamped to [0.5, 10.0] mm/day. Any internal failure
//	  yields exactly 5.0 with EtoResult.FallbackUsed set.
//	Hargreaves–Samani: needs only Tmin/Tmax plus latitude and day of
//	  year; extraterrestrial radiation Ra is computed from FAO-56
//	  astronomy (eqs. 21–25). Tmax ≤ Tmin returns exactly 0.0.
//
// Penman–Monteith and Hargreaves–Samani propagate evaluation failures as
// [ComputationError]; the simplified formula alone substitutes silently.
//
// # Irrigation Derivation
//
// ETc = Kc × ETo scales the reference value to a specific crop; one mm of
// water depth over one m² is one liter, so a daily volume is ETc × area.
package domain
