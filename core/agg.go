package core

import (
	"sort"

	"github.com/huangsam/statelog/schema"
)

// ComputeAvailability returns running / (running + faulted) and whether the ratio
// is defined. A zero denominator yields (0, false).
func ComputeAvailability(running, faulted int64) (float64, bool) {
	total := running + faulted
	if total <= 0 {
		return 0, false
	}
	return float64(running) / float64(total), true
}

// RankAlarms sorts alarm durations in descending order, breaking ties by ascending
// code, and returns the top 'limit' entries. If limit is greater than the number
// of alarms, all alarms are returned in sorted order.
func RankAlarms(durations map[int]int64, limit int) []schema.AlarmDuration {
	alarms := make([]schema.AlarmDuration, 0, len(durations))
	for code, seconds := range durations {
		alarms = append(alarms, schema.AlarmDuration{Code: code, DurationSeconds: seconds})
	}
	sort.Slice(alarms, func(i, j int) bool {
		if alarms[i].DurationSeconds != alarms[j].DurationSeconds {
			return alarms[i].DurationSeconds > alarms[j].DurationSeconds
		}
		return alarms[i].Code < alarms[j].Code
	})
	if limit < 0 {
		limit = 0
	}
	if len(alarms) > limit {
		return alarms[:limit]
	}
	return alarms
}

// Aggregate produces the final result from a completed accounting state.
// When requireData is set, an undefined availability is reported as InsufficientData.
func Aggregate(state *AccountingState, limit int, requireData bool) (schema.AnalysisResult, error) {
	availability, defined := ComputeAvailability(state.RunningSeconds(), state.FaultedSeconds())
	if !defined && requireData {
		return schema.AnalysisResult{}, schema.NewAnalysisError(schema.InsufficientData, 0, schema.ErrInsufficientData)
	}

	limit = min(limit, schema.MaxTopAlarms)

	return schema.AnalysisResult{
		RunningSeconds:      state.RunningSeconds(),
		FaultedSeconds:      state.FaultedSeconds(),
		Availability:        availability,
		AvailabilityDefined: defined,
		TopAlarms:           RankAlarms(state.AlarmDurations(), limit),
		RowsSeen:            state.RowsSeen(),
	}, nil
}
