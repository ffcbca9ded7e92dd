package core

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/statelog/schema"
)

// Classify returns the failure kind of an analysis error.
// Errors that carry no AnalysisError are Unclassified.
func Classify(err error) schema.FailureKind {
	if err == nil {
		return ""
	}
	var ae *schema.AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	switch {
	case errors.Is(err, schema.ErrSourceUnavailable):
		return schema.SourceUnavailable
	case errors.Is(err, schema.ErrMalformedRecord):
		return schema.MalformedRecord
	default:
		return schema.Unclassified
	}
}

// ExitCode maps an analysis outcome to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return schema.ExitSuccess
	}
	return Classify(err).ExitCode()
}

// NewReport wraps a result with run metadata for structured outputs.
func NewReport(source string, result schema.AnalysisResult, generatedAt time.Time) schema.Report {
	return schema.Report{
		RunID:       uuid.NewString(),
		Source:      source,
		GeneratedAt: generatedAt,
		Label:       schema.GetAvailabilityLabel(result.AvailabilityPercent(), result.AvailabilityDefined),
		Result:      result,
		Alarms:      schema.EnrichAlarms(result.TopAlarms, result.TotalSeconds()),
	}
}
