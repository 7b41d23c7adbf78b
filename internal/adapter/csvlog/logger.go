// Package csvlog appends computed results to a delimited text file, the
// external log collaborator. Records are keyed loosely by date; the header
// is written only when the file does not yet exist.
package csvlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/agroclim/eto-service/internal/domain"
)

var header = []string{
	"date", "station", "formula",
	"temp_mean_c", "temp_min_c", "temp_max_c",
	"relative_humidity_pct", "wind_speed_ms", "solar_radiation_mj_m2_day",
	"latitude_deg", "day_of_year", "altitude_m",
	"eto_mm_day", "fallback_used",
}

// Logger is an append-only CSV sink for computation results.
type Logger struct {
	path string
	mu   sync.Mutex
}

// New creates a logger writing to path. The file is created lazily on the
// first append.
func New(path string) *Logger {
	return &Logger{path: path}
}

// Append writes one result row, creating the file with a header row first
// if it does not exist yet.
func (l *Logger) Append(res domain.EtoResult, station string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open result log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	in := res.InputsUsed
	row := []string{
		res.EvaluatedAt.Format("2006-01-02"),
		station,
		string(res.Formula),
		formatFloat(in.TempMeanC),
		formatFloat(in.TempMinC),
		formatFloat(in.TempMaxC),
		formatFloat(in.RelHumidityPct),
		formatFloat(in.WindSpeedMS),
		formatFloat(in.SolarRadiationMJ),
		formatFloat(in.LatitudeDeg),
		formatInt(in.DayOfYear),
		formatFloat(in.AltitudeM),
		strconv.FormatFloat(res.ValueMMDay, 'f', 2, 64),
		strconv.FormatBool(res.FallbackUsed),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	w.Flush()
	return w.Error()
}

// formatFloat renders an optional field; absent stays an empty column, so
// a missing value is never confused with zero downstream.
func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
