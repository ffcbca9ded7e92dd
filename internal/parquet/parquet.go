// Package parquet provides data structures and functions for exporting statelog
// analysis reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/statelog/schema"
	"github.com/parquet-go/parquet-go"
)

// Summary represents the totals of a single analysis run.
type Summary struct {
	// RunID is the unique identifier for this analysis run
	RunID string `parquet:"run_id,snappy"`

	// Source is the path of the analyzed log
	Source string `parquet:"source,snappy"`

	// GeneratedAt is when the report was produced (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	RunningSeconds int64 `parquet:"running_seconds,snappy"`
	FaultedSeconds int64 `parquet:"faulted_seconds,snappy"`

	// Availability is the running ratio in [0, 1] (nullable when no time elapsed)
	Availability *float64 `parquet:"availability,optional,snappy"`

	// Label is the availability label
	Label string `parquet:"label,snappy"`

	// RowsSeen is the number of data rows folded
	RowsSeen int32 `parquet:"rows_seen,snappy"`
}

// Alarm represents one ranked alarm code of an analysis run.
type Alarm struct {
	// RunID references the parent analysis run
	RunID string `parquet:"run_id,snappy"`

	Rank            int32   `parquet:"rank,snappy"`
	AlarmCode       int64   `parquet:"alarm_code,snappy"`
	DurationSeconds int64   `parquet:"duration_seconds,snappy"`
	SharePercent    float64 `parquet:"share_percent,snappy"`
}

// FromReport converts a report into its Parquet rows.
func FromReport(report schema.Report) (Summary, []Alarm) {
	summary := Summary{
		RunID:          report.RunID,
		Source:         report.Source,
		GeneratedAt:    report.GeneratedAt,
		RunningSeconds: report.Result.RunningSeconds,
		FaultedSeconds: report.Result.FaultedSeconds,
		Label:          report.Label,
		RowsSeen:       int32(report.Result.RowsSeen),
	}
	if report.Result.AvailabilityDefined {
		availability := report.Result.Availability
		summary.Availability = &availability
	}

	alarms := make([]Alarm, 0, len(report.Alarms))
	for _, a := range report.Alarms {
		alarms = append(alarms, Alarm{
			RunID:           report.RunID,
			Rank:            int32(a.Rank),
			AlarmCode:       int64(a.Code),
			DurationSeconds: a.DurationSeconds,
			SharePercent:    a.SharePercent,
		})
	}
	return summary, alarms
}

// AlarmsPath returns the companion file path used for alarm rows.
// For "report.parquet" it is "report_alarms.parquet".
func AlarmsPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + "_alarms" + ext
}

// WriteReport writes the summary row to outputPath and the alarm rows to AlarmsPath(outputPath).
func WriteReport(report schema.Report, outputPath string) error {
	summary, alarms := FromReport(report)
	if err := writeFile(outputPath, []Summary{summary}); err != nil {
		return err
	}
	return writeFile(AlarmsPath(outputPath), alarms)
}

// writeFile creates outputPath and writes rows to it.
func writeFile[T any](outputPath string, rows []T) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WriteRows(file, rows)
}

// WriteRows writes rows to w. The schema is derived from the struct tags of T.
func WriteRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
