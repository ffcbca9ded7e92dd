package core

import (
	"fmt"
	"maps"
	"time"

	"github.com/huangsam/statelog/schema"
)

// AccountingState is the fold accumulator for a single analysis pass.
//
// The first event only seeds the previous-row reference. Every later event closes the
// interval since the previous row, attributes it to the run state and alarm code that
// were active during that interval, and then becomes the new reference.
type AccountingState struct {
	previousTimestamp time.Time
	previousRunning   bool
	previousAlarmCode int
	previousHasAlarm  bool

	rowsSeen       int
	runningSeconds int64
	faultedSeconds int64
	alarmDurations map[int]int64
}

// NewAccountingState returns an empty state ready for the first event.
func NewAccountingState() *AccountingState {
	return &AccountingState{alarmDurations: make(map[int]int64)}
}

// Fold consumes the next event. On error the state is left untouched and the
// analysis must be abandoned.
func (s *AccountingState) Fold(event schema.LogEvent, row int) error {
	if s.rowsSeen == 0 {
		s.advance(event)
		return nil
	}

	if event.Timestamp.Before(s.previousTimestamp) {
		return schema.NewAnalysisError(schema.OutOfOrderTimestamps, row,
			fmt.Errorf("%w: %s precedes %s", schema.ErrOutOfOrder,
				event.Timestamp.Format(time.RFC3339), s.previousTimestamp.Format(time.RFC3339)))
	}

	delta := wholeSeconds(s.previousTimestamp, event.Timestamp)
	if s.previousRunning {
		s.runningSeconds += delta
	} else {
		s.faultedSeconds += delta
	}
	if s.previousHasAlarm {
		s.alarmDurations[s.previousAlarmCode] += delta
	}

	s.advance(event)
	return nil
}

// wholeSeconds returns the seconds from start to end truncated toward zero.
// time.Time.Sub saturates near 292 years, so the difference is taken on Unix seconds.
func wholeSeconds(start, end time.Time) int64 {
	secs := end.Unix() - start.Unix()
	if end.Nanosecond() < start.Nanosecond() && secs > 0 {
		secs--
	}
	return secs
}

// advance makes the event the reference for the next interval.
func (s *AccountingState) advance(event schema.LogEvent) {
	s.previousTimestamp = event.Timestamp
	s.previousRunning = event.Running
	s.previousAlarmCode = event.AlarmCode
	s.previousHasAlarm = event.HasAlarm
	s.rowsSeen++
}

// RowsSeen returns the number of events folded so far.
func (s *AccountingState) RowsSeen() int {
	return s.rowsSeen
}

// RunningSeconds returns the time attributed to the running state.
func (s *AccountingState) RunningSeconds() int64 {
	return s.runningSeconds
}

// FaultedSeconds returns the time attributed to any non-running state.
func (s *AccountingState) FaultedSeconds() int64 {
	return s.faultedSeconds
}

// AlarmDurations returns a copy of the per-alarm cumulative seconds.
func (s *AccountingState) AlarmDurations() map[int]int64 {
	return maps.Clone(s.alarmDurations)
}
