package domain

// Unit conversion factors at the system boundary. Radiation sources report
// W/m² (instantaneous) or Wh/m² (hourly sum); both convert to MJ/m²/day by
// a fixed multiplication.
const (
	// WattToMJ converts W/m² to MJ/m²/day: 86400 s/day ÷ 1e6 J/MJ.
	WattToMJ = 0.0864

	// WattHourToMJ converts Wh/m² to MJ/m²/day: 3600 J/Wh ÷ 1e6 J/MJ.
	WattHourToMJ = 0.0036
)

// WattsToMJ converts a radiation value from W/m² to MJ/m²/day.
func WattsToMJ(v float64) float64 { return v * WattToMJ }

// WattHoursToMJ converts a radiation value from Wh/m² to MJ/m²/day.
func WattHoursToMJ(v float64) float64 { return v * WattHourToMJ }

// KmhToMS converts a wind speed from km/h to m/s.
func KmhToMS(v float64) float64 { return v / 3.6 }
