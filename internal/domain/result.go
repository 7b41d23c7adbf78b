package domain

import "time"

// Formula identifies one of the interchangeable ETo formulas. The caller
// selects which formula is active; they are never auto-selected from field
// availability.
type Formula string

const (
	PenmanMonteithFAO   Formula = "penman_monteith_fao"
	SimplifiedEmpirical Formula = "simplified_empirical"
	HargreavesSamani    Formula = "hargreaves_samani"
)

// ParseFormula validates a formula name from an external boundary.
func ParseFormula(s string) (Formula, error) {
	switch Formula(s) {
	case PenmanMonteithFAO, SimplifiedEmpirical, HargreavesSamani:
		return Formula(s), nil
	case "":
		return "", &ComputationError{Reason: "formula is required"}
	default:
		return "", &ComputationError{Formula: Formula(s), Reason: "unknown formula"}
	}
}

// EtoResult is the output of a single formula evaluation. InputsUsed is the
// effective snapshot the formula consumed, with any documented defaults
// (mean±5 temperature bounds, 50 m altitude) already applied, so a logged
// result can be audited without knowing the defaulting rules.
type EtoResult struct {
	ValueMMDay float64            `json:"eto_mm_day"`
	Formula    Formula            `json:"formula"`
	InputsUsed WeatherObservation `json:"inputs_used"`

	// FallbackUsed is true when SimplifiedEmpirical substituted its fixed
	// 5.0 value after an internal failure. Always false for the other
	// formulas, which propagate errors instead.
	FallbackUsed bool `json:"fallback_used,omitempty"`

	EvaluatedAt time.Time `json:"evaluated_at"`
}
