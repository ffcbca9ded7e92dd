package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for each failure kind. AnalysisError wraps one of these.
var (
	ErrSourceUnavailable  = errors.New("input source unavailable")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrMalformedAlarmCode = errors.New("malformed alarm code")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrOutOfOrder         = errors.New("timestamps are out of order")
	ErrInsufficientData   = errors.New("no elapsed time to compute availability")
)

// AnalysisError is a classified failure of an analysis pass.
// Row is the 1-based data row (header excluded) the failure was detected on, or 0
// when the failure is not tied to a row.
type AnalysisError struct {
	Kind FailureKind
	Row  int
	Err  error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError builds an AnalysisError for the given kind and row.
func NewAnalysisError(kind FailureKind, row int, err error) *AnalysisError {
	return &AnalysisError{Kind: kind, Row: row, Err: err}
}
