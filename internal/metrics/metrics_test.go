package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/statelog/schema"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAnalysis(t *testing.T) {
	Init()
	beforeOK := testutil.ToFloat64(analysesTotal.WithLabelValues(resultSuccess))
	beforeFail := testutil.ToFloat64(analysesTotal.WithLabelValues(string(schema.OutOfOrderTimestamps)))
	beforeRows := testutil.ToFloat64(rowsProcessed)
	beforeRunning := testutil.ToFloat64(accountedSeconds.WithLabelValues(stateRunning))
	beforeAlarm := testutil.ToFloat64(alarmSeconds.WithLabelValues("7"))

	result := schema.AnalysisResult{
		RunningSeconds: 10,
		FaultedSeconds: 10,
		TopAlarms:      []schema.AlarmDuration{{Code: 7, DurationSeconds: 10}},
		RowsSeen:       3,
	}
	ObserveAnalysis(result, "", 5*time.Millisecond)
	ObserveAnalysis(schema.AnalysisResult{}, schema.OutOfOrderTimestamps, time.Millisecond)

	assert.InDelta(t, beforeOK+1, testutil.ToFloat64(analysesTotal.WithLabelValues(resultSuccess)), 1e-9)
	assert.InDelta(t, beforeFail+1, testutil.ToFloat64(analysesTotal.WithLabelValues(string(schema.OutOfOrderTimestamps))), 1e-9)
	assert.InDelta(t, beforeRows+3, testutil.ToFloat64(rowsProcessed), 1e-9)
	assert.InDelta(t, beforeRunning+10, testutil.ToFloat64(accountedSeconds.WithLabelValues(stateRunning)), 1e-9)
	assert.InDelta(t, beforeAlarm+10, testutil.ToFloat64(alarmSeconds.WithLabelValues("7")), 1e-9)
}

func TestWriteTextfile(t *testing.T) {
	ObserveAnalysis(schema.AnalysisResult{RunningSeconds: 1, RowsSeen: 2}, "", time.Millisecond)

	path := filepath.Join(t.TempDir(), "statelog.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "statelog_analyses_total")
	assert.Contains(t, string(data), "statelog_rows_processed_total")
}
