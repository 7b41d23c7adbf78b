// Package pipeline orchestrates one computation request end to end:
// source acquisition, measurement extraction, and formula evaluation.
// Each request runs synchronously to completion; only the fetch blocks,
// bounded by the fetcher's fixed timeout.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/agroclim/eto-service/internal/domain"
	"github.com/agroclim/eto-service/internal/extract"
	"github.com/agroclim/eto-service/internal/observability"
)

// Fetcher retrieves a raw document for a target URL.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (string, error)
}

// ResultLogger appends a computed result to the external delimited log.
type ResultLogger interface {
	Append(res domain.EtoResult, station string) error
}

// Dialect declares how a fetched document should be parsed. It is declared
// per station, never auto-detected.
type Dialect string

const (
	DialectTable  Dialect = "table"  // HTML table with Greek labels
	DialectReport Dialect = "report" // fixed-width monthly report
)

// ParseDialect validates a dialect name from an external boundary.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case DialectTable, DialectReport:
		return Dialect(s), nil
	case "":
		return DialectTable, nil
	default:
		return "", fmt.Errorf("unknown dialect %q", s)
	}
}

// StationRequest describes one scrape-and-compute invocation. Latitude,
// day-of-year and altitude are companions for formulas the scraped fields
// cannot satisfy alone; they fill in only where the source yielded nothing.
type StationRequest struct {
	Station string  // registry slug, or a full http(s) URL
	Dialect Dialect
	Day     int // day of month, report dialect only
	Formula domain.Formula

	Latitude  *float64
	DayOfYear *int
	Altitude  *float64
}

// Service wires acquisition, extraction and evaluation behind two
// operations: ComputeFromStation and ComputeManual.
type Service struct {
	fetcher   Fetcher
	stations  map[string]string
	resultLog ResultLogger // nil disables logging
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Service. Pass a nil resultLog to disable the delimited log.
func New(fetcher Fetcher, stations map[string]string, resultLog ResultLogger, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		fetcher:   fetcher,
		stations:  stations,
		resultLog: resultLog,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once the service has completed at least one
// computation, or an error describing why it is not yet ready.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no computation completed yet")
	}
	return nil
}

// Stations lists the configured station slugs, sorted.
func (s *Service) Stations() []string {
	out := make([]string, 0, len(s.stations))
	for slug := range s.stations {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// ComputeFromStation fetches the station document, extracts an observation
// per the declared dialect, merges request companions into fields the
// source left absent, and evaluates the selected formula.
func (s *Service) ComputeFromStation(ctx context.Context, req StationRequest) (domain.EtoResult, error) {
	target, err := s.resolveTarget(req.Station)
	if err != nil {
		return domain.EtoResult{}, err
	}

	start := time.Now()
	raw, err := s.fetcher.Fetch(ctx, target)
	s.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.FetchRequests.WithLabelValues("error").Inc()
		s.logger.Warn("station fetch failed", "station", req.Station, "target", target, "error", err)
		return domain.EtoResult{}, err
	}
	s.metrics.FetchRequests.WithLabelValues("success").Inc()

	obs, err := s.extractObservation(raw, req)
	if err != nil {
		return domain.EtoResult{}, err
	}
	obs = mergeCompanions(obs, req)

	return s.evaluate(obs, req.Formula, req.Station)
}

// ComputeManual evaluates a formula over already-typed values, bypassing
// acquisition and extraction entirely.
func (s *Service) ComputeManual(obs domain.WeatherObservation, formula domain.Formula) (domain.EtoResult, error) {
	return s.evaluate(obs, formula, "manual")
}

func (s *Service) extractObservation(raw string, req StationRequest) (domain.WeatherObservation, error) {
	switch req.Dialect {
	case DialectReport:
		obs, err := extract.ParseDailyRow(raw, req.Day)
		if err != nil {
			return domain.WeatherObservation{}, err
		}
		if lat, ok := extract.ParseLatitude(raw); ok {
			obs.LatitudeDeg = domain.Float(lat)
		}
		return obs, nil
	default:
		return extract.ParseTable(raw)
	}
}

// mergeCompanions fills request-supplied values into fields the extractor
// left absent. Observed values always win; companions never overwrite.
func mergeCompanions(obs domain.WeatherObservation, req StationRequest) domain.WeatherObservation {
	if obs.LatitudeDeg == nil && req.Latitude != nil {
		obs.LatitudeDeg = req.Latitude
	}
	if obs.DayOfYear == nil && req.DayOfYear != nil {
		obs.DayOfYear = req.DayOfYear
	}
	if obs.AltitudeM == nil && req.Altitude != nil {
		obs.AltitudeM = req.Altitude
	}
	return obs
}

func (s *Service) evaluate(obs domain.WeatherObservation, formula domain.Formula, station string) (domain.EtoResult, error) {
	res, err := domain.Evaluate(formula, obs)
	if err != nil {
		s.metrics.ComputeRequests.WithLabelValues(string(formula), "error").Inc()
		return domain.EtoResult{}, err
	}

	outcome := "success"
	if res.FallbackUsed {
		outcome = "fallback"
	}
	s.metrics.ComputeRequests.WithLabelValues(string(formula), outcome).Inc()
	s.ready.Store(true)

	s.logger.Info("eto computed",
		"station", station,
		"formula", res.Formula,
		"eto_mm_day", res.ValueMMDay,
		"fallback_used", res.FallbackUsed,
	)

	if s.resultLog != nil {
		if err := s.resultLog.Append(res, station); err != nil {
			// Logging is a collaborator concern; a failed append never
			// fails the computation.
			s.logger.Warn("result log append failed", "error", err)
		} else {
			s.metrics.ResultsLogged.Inc()
		}
	}

	return res, nil
}

func (s *Service) resolveTarget(station string) (string, error) {
	if url, ok := s.stations[station]; ok {
		return url, nil
	}
	if strings.HasPrefix(station, "http://") || strings.HasPrefix(station, "https://") {
		return station, nil
	}
	return "", fmt.Errorf("unknown station %q", station)
}
