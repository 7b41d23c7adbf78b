package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/agroclim/eto-service/internal/domain"
	"github.com/agroclim/eto-service/internal/pipeline"
)

type handlers struct {
	svc    ComputeService
	logger *slog.Logger
}

// stationComputeRequest drives the scrape-and-compute path. Latitude,
// day-of-year and altitude are companions for fields the station page
// cannot provide.
type stationComputeRequest struct {
	Station string `json:"station"`
	Dialect string `json:"dialect,omitempty"`
	Day     int    `json:"day,omitempty"`
	Formula string `json:"formula"`

	LatitudeDeg *float64 `json:"latitude_deg,omitempty"`
	DayOfYear   *int     `json:"day_of_year,omitempty"`
	AltitudeM   *float64 `json:"altitude_m,omitempty"`

	irrigationRequest
}

// manualComputeRequest carries already-typed scalars with declared units,
// bypassing acquisition and extraction.
type manualComputeRequest struct {
	Formula string `json:"formula"`

	TempMeanC      *float64 `json:"temp_mean_c,omitempty"`
	TempMinC       *float64 `json:"temp_min_c,omitempty"`
	TempMaxC       *float64 `json:"temp_max_c,omitempty"`
	RelHumidityPct *float64 `json:"relative_humidity_pct,omitempty"`

	WindSpeed *float64 `json:"wind_speed,omitempty"`
	WindUnit  string   `json:"wind_unit,omitempty"` // "ms" (default) or "kmh"

	SolarRadiation *float64 `json:"solar_radiation,omitempty"`
	RadiationUnit  string   `json:"radiation_unit,omitempty"` // "w_m2" (default), "wh_m2", "mj_m2_day"

	LatitudeDeg *float64 `json:"latitude_deg,omitempty"`
	DayOfYear   *int     `json:"day_of_year,omitempty"`
	AltitudeM   *float64 `json:"altitude_m,omitempty"`

	irrigationRequest
}

// irrigationRequest optionally derives a crop water volume from the result.
type irrigationRequest struct {
	Crop            string   `json:"crop,omitempty"`
	CropCoefficient *float64 `json:"crop_coefficient,omitempty"`
	AreaM2          *float64 `json:"area_m2,omitempty"`
}

type computeResponse struct {
	domain.EtoResult
	Irrigation *irrigationResponse `json:"irrigation,omitempty"`
}

type irrigationResponse struct {
	Crop         string  `json:"crop,omitempty"`
	Kc           float64 `json:"kc"`
	EtcMMDay     float64 `json:"etc_mm_day"`
	VolumeLiters float64 `json:"volume_liters,omitempty"`
}

func (h *handlers) listStations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"stations": h.svc.Stations()})
}

func (h *handlers) computeFromStation(w http.ResponseWriter, r *http.Request) {
	var req stationComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "")
		return
	}
	if req.Station == "" {
		writeError(w, http.StatusBadRequest, "station is required", "")
		return
	}

	formula, err := domain.ParseFormula(req.Formula)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	dialect, err := pipeline.ParseDialect(req.Dialect)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	res, err := h.svc.ComputeFromStation(r.Context(), pipeline.StationRequest{
		Station:   req.Station,
		Dialect:   dialect,
		Day:       req.Day,
		Formula:   formula,
		Latitude:  req.LatitudeDeg,
		DayOfYear: req.DayOfYear,
		Altitude:  req.AltitudeM,
	})
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, buildResponse(res, req.irrigationRequest))
}

func (h *handlers) computeManual(w http.ResponseWriter, r *http.Request) {
	var req manualComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "")
		return
	}

	formula, err := domain.ParseFormula(req.Formula)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	obs, err := req.observation()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	res, err := h.svc.ComputeManual(obs, formula)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, buildResponse(res, req.irrigationRequest))
}

// observation normalizes declared units into the canonical record.
func (r manualComputeRequest) observation() (domain.WeatherObservation, error) {
	obs := domain.WeatherObservation{
		TempMeanC:      r.TempMeanC,
		TempMinC:       r.TempMinC,
		TempMaxC:       r.TempMaxC,
		RelHumidityPct: r.RelHumidityPct,
		LatitudeDeg:    r.LatitudeDeg,
		DayOfYear:      r.DayOfYear,
		AltitudeM:      r.AltitudeM,
	}

	if r.WindSpeed != nil {
		switch r.WindUnit {
		case "", "ms":
			obs.WindSpeedMS = r.WindSpeed
		case "kmh":
			obs.WindSpeedMS = domain.Float(domain.KmhToMS(*r.WindSpeed))
		default:
			return domain.WeatherObservation{}, errors.New("wind_unit must be \"ms\" or \"kmh\"")
		}
	}

	if r.SolarRadiation != nil {
		switch r.RadiationUnit {
		case "", "w_m2":
			obs.SolarRadiationMJ = domain.Float(domain.WattsToMJ(*r.SolarRadiation))
		case "wh_m2":
			obs.SolarRadiationMJ = domain.Float(domain.WattHoursToMJ(*r.SolarRadiation))
		case "mj_m2_day":
			obs.SolarRadiationMJ = r.SolarRadiation
		default:
			return domain.WeatherObservation{}, errors.New("radiation_unit must be \"w_m2\", \"wh_m2\" or \"mj_m2_day\"")
		}
	}

	return obs, nil
}

// buildResponse attaches the optional irrigation derivation to a result.
func buildResponse(res domain.EtoResult, irr irrigationRequest) computeResponse {
	out := computeResponse{EtoResult: res}

	kc := 0.0
	switch {
	case irr.CropCoefficient != nil:
		kc = *irr.CropCoefficient
	case irr.Crop != "":
		if v, ok := domain.CropCoefficient(irr.Crop); ok {
			kc = v
		}
	}
	if kc <= 0 {
		return out
	}

	etc := domain.CropEvapotranspiration(res.ValueMMDay, kc)
	ir := &irrigationResponse{Crop: irr.Crop, Kc: kc, EtcMMDay: etc}
	if irr.AreaM2 != nil {
		ir.VolumeLiters = domain.IrrigationVolume(etc, *irr.AreaM2)
	}
	out.Irrigation = ir
	return out
}

// writeComputeError maps the error taxonomy to status codes and the
// human-readable message categories the presentation layer expects.
func (h *handlers) writeComputeError(w http.ResponseWriter, err error) {
	var retrieval *domain.RetrievalError
	var malformed *domain.MalformedSourceError
	var computation *domain.ComputationError

	switch {
	case errors.As(err, &retrieval):
		writeError(w, http.StatusBadGateway, "station data retrieval failed", "try manual entry")
	case errors.As(err, &malformed):
		writeError(w, http.StatusUnprocessableEntity, "no data found for requested day or fields", "")
	case errors.As(err, &computation):
		writeError(w, http.StatusUnprocessableEntity, computation.Error(), "")
	default:
		h.logger.Error("compute failed", "error", err)
		writeError(w, http.StatusBadRequest, err.Error(), "")
	}
}

func writeError(w http.ResponseWriter, status int, message, hint string) {
	body := map[string]string{"error": message}
	if hint != "" {
		body["hint"] = hint
	}
	writeJSON(w, status, body)
}
