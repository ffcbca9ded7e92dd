// Package schema has configs, models and constants for all parts of statelog.
package schema

import "time"

// LogEvent is one decoded row of a machine state log.
// It is produced by the row decoder and never mutated afterwards.
type LogEvent struct {
	Running   bool      // True iff the state label is exactly "running"
	Timestamp time.Time // Instant the machine entered this state
	AlarmCode int       // Alarm code active from this row on, valid only when HasAlarm is set
	HasAlarm  bool      // False when the alarm field was empty or whitespace
}

// AlarmDuration is the cumulative time attributed to a single alarm code.
type AlarmDuration struct {
	Code            int   `json:"code" yaml:"code"`
	DurationSeconds int64 `json:"duration_seconds" yaml:"duration_seconds"`
}

// AnalysisResult is the operational summary of one state log.
// It is produced once at the end of a successful pass and is read-only thereafter.
type AnalysisResult struct {
	RunningSeconds int64 `json:"running_seconds" yaml:"running_seconds"`
	FaultedSeconds int64 `json:"faulted_seconds" yaml:"faulted_seconds"`

	// Availability is RunningSeconds / (RunningSeconds + FaultedSeconds) in [0, 1].
	// It is only meaningful when AvailabilityDefined is true.
	Availability        float64 `json:"availability" yaml:"availability"`
	AvailabilityDefined bool    `json:"availability_defined" yaml:"availability_defined"`

	TopAlarms []AlarmDuration `json:"top_alarms" yaml:"top_alarms"` // Sorted by duration desc, code asc
	RowsSeen  int             `json:"rows_seen" yaml:"rows_seen"`   // Data rows consumed, header excluded
}

// TotalSeconds returns the total accounted time of the log.
func (r AnalysisResult) TotalSeconds() int64 {
	return r.RunningSeconds + r.FaultedSeconds
}

// AvailabilityPercent returns availability scaled to 0-100.
func (r AnalysisResult) AvailabilityPercent() float64 {
	return r.Availability * 100
}

// Report wraps an AnalysisResult with run metadata for file and structured outputs.
type Report struct {
	RunID       string          `json:"run_id" yaml:"run_id"`
	Source      string          `json:"source" yaml:"source"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Label       string          `json:"label" yaml:"label"`
	Result      AnalysisResult  `json:"result" yaml:"result"`
	Alarms      []EnrichedAlarm `json:"alarms" yaml:"alarms"`
}
