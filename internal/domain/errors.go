package domain

import "fmt"

// RetrievalError reports a failed remote document fetch: timeout, transport
// failure, or a non-success HTTP status. Retrieval is never retried; the
// caller is expected to fall back to manual entry.
type RetrievalError struct {
	Target string
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieve %s: %v", e.Target, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// MalformedSourceError reports empty or null raw input to the extractor.
// Individual missing or unparseable fields are not errors; they simply
// leave the corresponding observation field absent.
type MalformedSourceError struct {
	Reason string
}

func (e *MalformedSourceError) Error() string {
	return "malformed source: " + e.Reason
}

// ComputationError reports a formula evaluation failure: a required field
// missing, or arithmetic producing a non-finite value. SimplifiedEmpirical
// never returns this; it substitutes its fixed fallback instead.
type ComputationError struct {
	Formula Formula
	Reason  string
}

func (e *ComputationError) Error() string {
	if e.Formula == "" {
		return "compute eto: " + e.Reason
	}
	return fmt.Sprintf("compute eto (%s): %s", e.Formula, e.Reason)
}
