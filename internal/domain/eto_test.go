package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceObservation is the documented Penman–Monteith scenario:
// Tmean=25, Tmin=18, Tmax=32, RH=60%, wind=2 m/s, radiation=200 W/m²,
// altitude=50 m.
func referenceObservation() WeatherObservation {
	return WeatherObservation{
		TempMeanC:        Float(25),
		TempMinC:         Float(18),
		TempMaxC:         Float(32),
		RelHumidityPct:   Float(60),
		WindSpeedMS:      Float(2),
		SolarRadiationMJ: Float(WattsToMJ(200)),
		AltitudeM:        Float(50),
	}
}

func TestEvaluatePenmanMonteith(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		res, err := EvaluatePenmanMonteith(referenceObservation())

		require.NoError(t, err)
		assert.Equal(t, PenmanMonteithFAO, res.Formula)
		assert.InDelta(t, 5.23, res.ValueMMDay, 0.005)
		assert.False(t, res.FallbackUsed)
	})

	t.Run("temperature bounds default to mean plus and minus five", func(t *testing.T) {
		explicit := WeatherObservation{
			TempMeanC:        Float(25),
			TempMinC:         Float(20),
			TempMaxC:         Float(30),
			RelHumidityPct:   Float(60),
			WindSpeedMS:      Float(2),
			SolarRadiationMJ: Float(17.28),
		}
		defaulted := explicit
		defaulted.TempMinC = nil
		defaulted.TempMaxC = nil

		resExplicit, err := EvaluatePenmanMonteith(explicit)
		require.NoError(t, err)
		resDefaulted, err := EvaluatePenmanMonteith(defaulted)
		require.NoError(t, err)

		assert.Equal(t, resExplicit.ValueMMDay, resDefaulted.ValueMMDay)
	})

	t.Run("altitude defaults to 50 m", func(t *testing.T) {
		withAltitude := referenceObservation()
		withoutAltitude := referenceObservation()
		withoutAltitude.AltitudeM = nil

		resWith, err := EvaluatePenmanMonteith(withAltitude)
		require.NoError(t, err)
		resWithout, err := EvaluatePenmanMonteith(withoutAltitude)
		require.NoError(t, err)

		assert.Equal(t, resWith.ValueMMDay, resWithout.ValueMMDay)
	})

	t.Run("inputs snapshot records applied defaults", func(t *testing.T) {
		obs := WeatherObservation{
			TempMeanC:        Float(25),
			RelHumidityPct:   Float(60),
			WindSpeedMS:      Float(2),
			SolarRadiationMJ: Float(17.28),
		}
		res, err := EvaluatePenmanMonteith(obs)

		require.NoError(t, err)
		require.NotNil(t, res.InputsUsed.TempMinC)
		require.NotNil(t, res.InputsUsed.TempMaxC)
		require.NotNil(t, res.InputsUsed.AltitudeM)
		assert.Equal(t, 20.0, *res.InputsUsed.TempMinC)
		assert.Equal(t, 30.0, *res.InputsUsed.TempMaxC)
		assert.Equal(t, 50.0, *res.InputsUsed.AltitudeM)
	})

	t.Run("missing required fields", func(t *testing.T) {
		tests := []struct {
			name  string
			strip func(*WeatherObservation)
		}{
			{"temperature", func(o *WeatherObservation) { o.TempMeanC = nil }},
			{"humidity", func(o *WeatherObservation) { o.RelHumidityPct = nil }},
			{"wind", func(o *WeatherObservation) { o.WindSpeedMS = nil }},
			{"radiation", func(o *WeatherObservation) { o.SolarRadiationMJ = nil }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				obs := referenceObservation()
				tt.strip(&obs)

				_, err := EvaluatePenmanMonteith(obs)

				var cerr *ComputationError
				require.ErrorAs(t, err, &cerr)
				assert.Equal(t, PenmanMonteithFAO, cerr.Formula)
			})
		}
	})
}

func TestEvaluateSimplified(t *testing.T) {
	t.Run("nominal estimate", func(t *testing.T) {
		res := EvaluateSimplified(WeatherObservation{
			TempMeanC:        Float(25),
			RelHumidityPct:   Float(60),
			SolarRadiationMJ: Float(18),
		})

		assert.Equal(t, SimplifiedEmpirical, res.Formula)
		assert.InDelta(t, 2.2746, res.ValueMMDay, 1e-9)
		assert.False(t, res.FallbackUsed)
	})

	t.Run("clamps to lower bound", func(t *testing.T) {
		res := EvaluateSimplified(WeatherObservation{
			TempMeanC:        Float(0),
			RelHumidityPct:   Float(100),
			SolarRadiationMJ: Float(0),
		})

		assert.Equal(t, 0.5, res.ValueMMDay)
		assert.False(t, res.FallbackUsed)
	})

	t.Run("clamps to upper bound", func(t *testing.T) {
		res := EvaluateSimplified(WeatherObservation{
			TempMeanC:        Float(45),
			RelHumidityPct:   Float(0),
			SolarRadiationMJ: Float(90),
		})

		assert.Equal(t, 10.0, res.ValueMMDay)
		assert.False(t, res.FallbackUsed)
	})

	t.Run("substitutes fixed fallback on missing input", func(t *testing.T) {
		res := EvaluateSimplified(WeatherObservation{
			TempMeanC:      Float(25),
			RelHumidityPct: Float(60),
		})

		assert.Equal(t, 5.0, res.ValueMMDay)
		assert.True(t, res.FallbackUsed)
	})

	t.Run("output always within clamp range", func(t *testing.T) {
		for _, tMean := range []float64{-20, 0, 15, 30, 50} {
			for _, rh := range []float64{0, 50, 100} {
				for _, rmj := range []float64{0, 10, 40, 100} {
					res := EvaluateSimplified(WeatherObservation{
						TempMeanC:        Float(tMean),
						RelHumidityPct:   Float(rh),
						SolarRadiationMJ: Float(rmj),
					})
					assert.GreaterOrEqual(t, res.ValueMMDay, 0.5)
					assert.LessOrEqual(t, res.ValueMMDay, 10.0)
				}
			}
		}
	})
}

func TestEvaluateHargreaves(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		res, err := EvaluateHargreaves(WeatherObservation{
			TempMinC:    Float(20),
			TempMaxC:    Float(32),
			LatitudeDeg: Float(35.5),
			DayOfYear:   Int(180),
		})

		require.NoError(t, err)
		assert.Equal(t, HargreavesSamani, res.Formula)
		assert.InDelta(t, 14.50, res.ValueMMDay, 0.02)
	})

	t.Run("tmax at or below tmin returns exactly zero", func(t *testing.T) {
		for _, tMax := range []float64{20, 18.5, -5} {
			res, err := EvaluateHargreaves(WeatherObservation{
				TempMinC:    Float(20),
				TempMaxC:    Float(tMax),
				LatitudeDeg: Float(35.5),
				DayOfYear:   Int(180),
			})

			require.NoError(t, err)
			assert.Equal(t, 0.0, res.ValueMMDay)
		}
	})

	t.Run("missing latitude", func(t *testing.T) {
		_, err := EvaluateHargreaves(WeatherObservation{
			TempMinC:  Float(20),
			TempMaxC:  Float(32),
			DayOfYear: Int(180),
		})

		var cerr *ComputationError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("day of year out of range", func(t *testing.T) {
		for _, doy := range []int{0, 367, -1} {
			_, err := EvaluateHargreaves(WeatherObservation{
				TempMinC:    Float(20),
				TempMaxC:    Float(32),
				LatitudeDeg: Float(35.5),
				DayOfYear:   Int(doy),
			})
			require.Error(t, err)
		}
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("dispatches by formula", func(t *testing.T) {
		res, err := Evaluate(PenmanMonteithFAO, referenceObservation())
		require.NoError(t, err)
		assert.Equal(t, PenmanMonteithFAO, res.Formula)

		res, err = Evaluate(SimplifiedEmpirical, referenceObservation())
		require.NoError(t, err)
		assert.Equal(t, SimplifiedEmpirical, res.Formula)
	})

	t.Run("unknown formula", func(t *testing.T) {
		_, err := Evaluate("dalton", referenceObservation())
		require.Error(t, err)
	})

	t.Run("stamps evaluation time from the clock", func(t *testing.T) {
		frozen := time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(frozen))
		defer SetClock(nil)

		res, err := Evaluate(PenmanMonteithFAO, referenceObservation())

		require.NoError(t, err)
		assert.Equal(t, frozen, res.EvaluatedAt)
	})
}

func TestParseFormula(t *testing.T) {
	for _, name := range []string{"penman_monteith_fao", "simplified_empirical", "hargreaves_samani"} {
		f, err := ParseFormula(name)
		require.NoError(t, err)
		assert.Equal(t, Formula(name), f)
	}

	_, err := ParseFormula("")
	require.Error(t, err)
	_, err = ParseFormula("thornthwaite")
	require.Error(t, err)
}
