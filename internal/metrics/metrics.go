// Package metrics records Prometheus counters for analysis runs.
//
// A one-shot CLI has no scrape endpoint, so the registry can be written out in the
// node-exporter textfile format with WriteTextfile.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/huangsam/statelog/schema"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "statelog_"

	resultSuccess = "success"

	stateRunning = "running"
	stateFaulted = "faulted"
)

var (
	registerOnce sync.Once
	registry     *prometheus.Registry

	analysesTotal    *prometheus.CounterVec
	rowsProcessed    prometheus.Counter
	analysisDuration *prometheus.HistogramVec
	accountedSeconds *prometheus.CounterVec
	alarmSeconds     *prometheus.CounterVec
)

// Init registers analysis metrics on the package registry.
func Init() {
	registerOnce.Do(func() {
		registry = prometheus.NewRegistry()

		analysesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "analyses_total",
				Help: "Total analyses by result",
			},
			[]string{"result"},
		)
		rowsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "rows_processed_total",
			Help: "Total data rows folded by successful analyses",
		})
		analysisDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "analysis_duration_seconds",
				Help:    "Analysis wall time in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		accountedSeconds = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "accounted_seconds_total",
				Help: "Machine time attributed by state",
			},
			[]string{"state"},
		)
		alarmSeconds = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "top_alarm_seconds_total",
				Help: "Machine time attributed to ranked alarm codes",
			},
			[]string{"code"},
		)

		registry.MustRegister(
			analysesTotal,
			rowsProcessed,
			analysisDuration,
			accountedSeconds,
			alarmSeconds,
		)
	})
}

// Registry returns the registry holding analysis metrics.
func Registry() *prometheus.Registry {
	Init()
	return registry
}

// ObserveAnalysis records one finished analysis. An empty kind counts as success;
// failures are labeled with their failure kind.
func ObserveAnalysis(result schema.AnalysisResult, kind schema.FailureKind, elapsed time.Duration) {
	Init()

	label := resultSuccess
	if kind != "" {
		label = string(kind)
	}
	analysesTotal.WithLabelValues(label).Inc()
	analysisDuration.WithLabelValues(label).Observe(elapsed.Seconds())

	if kind != "" {
		return
	}
	rowsProcessed.Add(float64(result.RowsSeen))
	accountedSeconds.WithLabelValues(stateRunning).Add(float64(result.RunningSeconds))
	accountedSeconds.WithLabelValues(stateFaulted).Add(float64(result.FaultedSeconds))
	for _, alarm := range result.TopAlarms {
		alarmSeconds.WithLabelValues(strconv.Itoa(alarm.Code)).Add(float64(alarm.DurationSeconds))
	}
}

// WriteTextfile writes the registry to path in the text exposition format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry())
}
