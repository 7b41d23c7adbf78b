// Command etoctl performs a one-shot ETo computation from a station URL or
// a saved local document, printing the result as JSON.
//
// Usage:
//
//	go run ./cmd/etoctl \
//	  -url https://penteli.meteo.gr/stations/heraklion/ \
//	  -formula penman_monteith_fao
//
//	go run ./cmd/etoctl \
//	  -file report_2024.txt -dialect report -day 15 \
//	  -formula hargreaves_samani -doy 180 -lat 35.5
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/agroclim/eto-service/internal/adapter/meteo"
	"github.com/agroclim/eto-service/internal/domain"
	"github.com/agroclim/eto-service/internal/extract"
)

func main() {
	url := flag.String("url", "", "station page URL to fetch")
	file := flag.String("file", "", "local document to parse instead of fetching")
	dialect := flag.String("dialect", "table", "source dialect: table or report")
	day := flag.Int("day", 0, "day of month (report dialect)")
	formulaName := flag.String("formula", string(domain.PenmanMonteithFAO), "formula to evaluate")
	lat := flag.Float64("lat", 0, "latitude in signed decimal degrees (hargreaves)")
	doy := flag.Int("doy", 0, "day of year 1-366 (hargreaves)")
	altitude := flag.Float64("altitude", 0, "station altitude in meters")
	timeout := flag.Duration("timeout", 12*time.Second, "fetch timeout")
	flag.Parse()

	if (*url == "") == (*file == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -url or -file is required")
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*url, *file, *dialect, *day, *formulaName, *lat, *doy, *altitude, *timeout); code != 0 {
		os.Exit(code)
	}
}

func run(url, file, dialect string, day int, formulaName string, lat float64, doy int, altitude float64, timeout time.Duration) int {
	formula, err := domain.ParseFormula(formulaName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	raw, err := loadDocument(url, file, timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v (try manual entry)\n", err)
		return 1
	}

	var obs domain.WeatherObservation
	switch dialect {
	case "report":
		obs, err = extract.ParseDailyRow(raw, day)
		if err == nil {
			if v, ok := extract.ParseLatitude(raw); ok {
				obs.LatitudeDeg = domain.Float(v)
			}
		}
	case "table":
		obs, err = extract.ParseTable(raw)
	default:
		fmt.Fprintf(os.Stderr, "FATAL: unknown dialect %q\n", dialect)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	if obs.LatitudeDeg == nil && lat != 0 {
		obs.LatitudeDeg = domain.Float(lat)
	}
	if obs.DayOfYear == nil && doy != 0 {
		obs.DayOfYear = domain.Int(doy)
	}
	if obs.AltitudeM == nil && altitude != 0 {
		obs.AltitudeM = domain.Float(altitude)
	}

	res, err := domain.Evaluate(formula, obs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: encode result: %v\n", err)
		return 1
	}
	return 0
}

func loadDocument(url, file string, timeout time.Duration) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	}

	client := meteo.NewClient(timeout, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return client.Fetch(context.Background(), url)
}
