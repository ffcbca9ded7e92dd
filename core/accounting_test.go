package core

import (
	"testing"
	"time"

	"github.com/huangsam/statelog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func event(running bool, offset time.Duration, alarm ...int) schema.LogEvent {
	e := schema.LogEvent{Running: running, Timestamp: epoch.Add(offset)}
	if len(alarm) > 0 {
		e.AlarmCode = alarm[0]
		e.HasAlarm = true
	}
	return e
}

func foldAll(t *testing.T, events ...schema.LogEvent) *AccountingState {
	t.Helper()
	state := NewAccountingState()
	for i, e := range events {
		require.NoError(t, state.Fold(e, i+1))
	}
	return state
}

func TestFoldFirstEventOnlySeeds(t *testing.T) {
	state := foldAll(t, event(true, 0, 9))

	assert.Equal(t, 1, state.RowsSeen())
	assert.Zero(t, state.RunningSeconds())
	assert.Zero(t, state.FaultedSeconds())
	assert.Empty(t, state.AlarmDurations())
}

func TestFoldAttributesPreviousState(t *testing.T) {
	state := foldAll(t,
		event(true, 0),
		event(false, 10*time.Second),
		event(true, 25*time.Second),
		event(true, 26*time.Second),
	)

	assert.Equal(t, int64(11), state.RunningSeconds()) // 0-10 and 25-26
	assert.Equal(t, int64(15), state.FaultedSeconds()) // 10-25
	assert.Equal(t, 4, state.RowsSeen())
}

func TestFoldSeedsFirstRowAlarm(t *testing.T) {
	state := foldAll(t,
		event(false, 0, 5),
		event(true, 10*time.Second),
		event(true, 20*time.Second),
	)

	assert.Equal(t, map[int]int64{5: 10}, state.AlarmDurations())
	assert.Equal(t, int64(10), state.FaultedSeconds())
	assert.Equal(t, int64(10), state.RunningSeconds())
}

func TestFoldAccumulatesAlarmCodes(t *testing.T) {
	state := foldAll(t,
		event(true, 0),
		event(false, 10*time.Second, 7),
		event(false, 15*time.Second, 3),
		event(false, 25*time.Second, 7),
		event(true, 28*time.Second),
	)

	assert.Equal(t, map[int]int64{7: 8, 3: 10}, state.AlarmDurations())
	assert.Equal(t, int64(10), state.RunningSeconds())
	assert.Equal(t, int64(18), state.FaultedSeconds())
}

func TestFoldOutOfOrder(t *testing.T) {
	state := NewAccountingState()
	require.NoError(t, state.Fold(event(true, 0), 1))
	require.NoError(t, state.Fold(event(true, 10*time.Second, 4), 2))

	err := state.Fold(event(false, 5*time.Second), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrOutOfOrder)

	var ae *schema.AnalysisError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, schema.OutOfOrderTimestamps, ae.Kind)
	assert.Equal(t, 3, ae.Row)

	// The failed fold leaves the state untouched.
	assert.Equal(t, 2, state.RowsSeen())
	assert.Equal(t, int64(10), state.RunningSeconds())
	assert.Empty(t, state.AlarmDurations())
}

func TestFoldEqualTimestamps(t *testing.T) {
	state := foldAll(t,
		event(false, 0, 1),
		event(false, 0, 1),
		event(true, 0),
	)

	assert.Zero(t, state.RunningSeconds()+state.FaultedSeconds())
	assert.Equal(t, map[int]int64{1: 0}, state.AlarmDurations())
	assert.Equal(t, 3, state.RowsSeen())
}

func TestFoldTruncatesSubSecondIntervals(t *testing.T) {
	state := foldAll(t,
		event(true, 0),
		event(true, 1900*time.Millisecond),
		event(true, 2500*time.Millisecond),
	)

	// 1.9s truncates to 1 and 0.6s truncates to 0.
	assert.Equal(t, int64(1), state.RunningSeconds())
}

func TestAlarmDurationsIsCopy(t *testing.T) {
	state := foldAll(t, event(false, 0, 2), event(true, time.Second))

	durations := state.AlarmDurations()
	durations[2] = 1000

	assert.Equal(t, map[int]int64{2: 1}, state.AlarmDurations())
}

func TestFoldIntervalsBeyondDurationRange(t *testing.T) {
	start := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	state := NewAccountingState()
	require.NoError(t, state.Fold(schema.LogEvent{Running: true, Timestamp: start, AlarmCode: 5, HasAlarm: true}, 1))
	require.NoError(t, state.Fold(schema.LogEvent{Timestamp: end}, 2))

	want := end.Unix() - start.Unix()
	assert.Equal(t, int64(63839664000), want)
	assert.Equal(t, want, state.RunningSeconds())
	assert.Zero(t, state.FaultedSeconds())
	assert.Equal(t, map[int]int64{5: want}, state.AlarmDurations())
}

func TestWholeSeconds(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int64
	}{
		{"equal", epoch, epoch, 0},
		{"sub-second", epoch, epoch.Add(900 * time.Millisecond), 0},
		{"borrow from nanoseconds", epoch.Add(800 * time.Millisecond), epoch.Add(2300 * time.Millisecond), 1},
		{"exact", epoch.Add(500 * time.Millisecond), epoch.Add(3500 * time.Millisecond), 3},
		{"year one to 2024", time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 63839664000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wholeSeconds(tt.start, tt.end))
		})
	}
}
