package domain

// Crop coefficients (Kc, mid-season) for the crops the irrigation
// derivation supports out of the box. Values are FAO-56 table 12 style
// single coefficients; callers with better local data pass an explicit Kc.
var cropCoefficients = map[string]float64{
	"olive":      0.70,
	"citrus":     0.65,
	"vine":       0.70,
	"vegetables": 1.05,
}

// CropCoefficient looks up the default Kc for a named crop.
func CropCoefficient(crop string) (float64, bool) {
	kc, ok := cropCoefficients[crop]
	return kc, ok
}

// CropEvapotranspiration derives ETc (mm/day) from a reference ETo and a
// crop coefficient.
func CropEvapotranspiration(etoMMDay, kc float64) float64 {
	return etoMMDay * kc
}

// IrrigationVolume converts a crop evapotranspiration depth to a daily
// water volume in liters over the given area. One mm of depth over one m²
// is one liter.
func IrrigationVolume(etcMMDay, areaM2 float64) float64 {
	return etcMMDay * areaM2
}
