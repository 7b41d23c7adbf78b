package domain

import "math"

// solarConstant is Gsc in MJ·m⁻²·min⁻¹ (FAO-56 eq. 21).
const solarConstant = 0.0820

// ExtraterrestrialRadiation computes Ra (MJ/m²/day) for a latitude in
// signed decimal degrees (positive north) and a day of year, using the
// FAO-56 astronomical approximation: inverse relative Earth–Sun distance,
// solar declination, and sunset hour angle (eqs. 21–25).
func ExtraterrestrialRadiation(latitudeDeg float64, dayOfYear int) float64 {
	j := float64(dayOfYear)
	phi := latitudeDeg * math.Pi / 180

	// Inverse relative Earth–Sun distance and solar declination.
	dr := 1 + 0.033*math.Cos(2*math.Pi*j/365)
	decl := 0.409 * math.Sin(2*math.Pi*j/365-1.39)

	// Sunset hour angle; the argument is clamped so polar day/night
	// latitudes do not produce NaN from Acos.
	x := -math.Tan(phi) * math.Tan(decl)
	ws := math.Acos(math.Min(math.Max(x, -1), 1))

	return (24 * 60 / math.Pi) * solarConstant * dr *
		(ws*math.Sin(phi)*math.Sin(decl) + math.Cos(phi)*math.Cos(decl)*math.Sin(ws))
}
