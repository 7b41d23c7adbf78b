package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroclim/eto-service/internal/domain"
)

// monthlyReport mimics a fixed-width monthly climatological summary with
// a MEAN/HIGH/LOW column layout.
const monthlyReport = `MONTHLY CLIMATOLOGICAL SUMMARY for JUL. 2024
Latitude: 35.50000 N   Longitude: 24.03000 E

DAY  MEAN   HIGH   LOW
----------------------
05   23.9   30.2   17.5
14   24.3   31.0   18.2
15   25.1   32.4   18.6
16   24.8   31.9   17.9
`

func TestParseDailyRow(t *testing.T) {
	t.Run("extremes among plausible candidates", func(t *testing.T) {
		obs, err := ParseDailyRow(monthlyReport, 15)
		require.NoError(t, err)

		require.NotNil(t, obs.TempMaxC)
		require.NotNil(t, obs.TempMinC)
		require.NotNil(t, obs.TempMeanC)
		assert.Equal(t, 32.4, *obs.TempMaxC)
		assert.Equal(t, 18.6, *obs.TempMinC)
		// Mean is the midpoint, not the reported 25.1 average.
		assert.InDelta(t, 25.5, *obs.TempMeanC, 1e-12)
	})

	t.Run("zero padded day token", func(t *testing.T) {
		obs, err := ParseDailyRow(monthlyReport, 5)
		require.NoError(t, err)

		require.NotNil(t, obs.TempMaxC)
		assert.Equal(t, 30.2, *obs.TempMaxC)
		assert.Equal(t, 17.5, *obs.TempMinC)
	})

	t.Run("day absent from report", func(t *testing.T) {
		obs, err := ParseDailyRow(monthlyReport, 31)
		require.NoError(t, err)
		assert.True(t, obs.Empty())
	})

	t.Run("implausible candidates are filtered", func(t *testing.T) {
		report := "15   25.1   -99.9   18.6   888.0\n"
		obs, err := ParseDailyRow(report, 15)
		require.NoError(t, err)

		require.NotNil(t, obs.TempMaxC)
		assert.Equal(t, 25.1, *obs.TempMaxC)
		assert.Equal(t, 18.6, *obs.TempMinC)
	})

	t.Run("fewer than two plausible candidates means no data", func(t *testing.T) {
		report := "15   25.1   -99.9   888.0\n"
		obs, err := ParseDailyRow(report, 15)
		require.NoError(t, err)
		assert.True(t, obs.Empty())
	})

	t.Run("day token is excluded from candidates", func(t *testing.T) {
		// The leading "2" must not become the daily low.
		report := "2   25.1   32.4   18.6\n"
		obs, err := ParseDailyRow(report, 2)
		require.NoError(t, err)

		require.NotNil(t, obs.TempMinC)
		assert.Equal(t, 18.6, *obs.TempMinC)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseDailyRow("", 15)

		var merr *domain.MalformedSourceError
		require.ErrorAs(t, err, &merr)
	})
}

func TestParseLatitude(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   float64
		wantOK bool
	}{
		{"northern hemisphere", "Latitude: 35.50000 N", 35.5, true},
		{"southern hemisphere", "Latitude: 35.50000 S", -35.5, true},
		{"embedded in header", monthlyReport, 35.5, true},
		{"older deg min form", "LAT: 35 deg 30 min", 35.5, true},
		{"no declaration", "DAY MEAN HIGH LOW", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLatitude(tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
