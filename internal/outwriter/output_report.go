package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/statelog/internal/contract"
	"github.com/huangsam/statelog/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeReportText writes the plain summary:
//
//	Running time: 20 seconds
//	Faulted time: 10 seconds
//	Availability: 66.67%
//	Top 5 Alarm Codes (Duration in seconds):
//	 - 7 (10)
func writeReportText(w io.Writer, result schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	limit := cfg.ResultLimit
	if limit <= 0 {
		limit = schema.MaxTopAlarms
	}

	if _, err := fmt.Fprintf(w, "Running time: %d seconds\n", result.RunningSeconds); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Faulted time: %d seconds\n", result.FaultedSeconds); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Availability: %s\n", formatAvailability(result, fmtFloat)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Top %d Alarm Codes (Duration in seconds):\n", limit); err != nil {
		return err
	}
	for _, a := range result.TopAlarms {
		if _, err := fmt.Fprintf(w, " - %d (%d)\n", a.Code, a.DurationSeconds); err != nil {
			return err
		}
	}
	return nil
}

// writeReportTable generates and writes the human-readable tables.
func writeReportTable(w io.Writer, report schema.Report, cfg *contract.Config, fmtFloat func(float64) string, useColor bool, duration time.Duration) error {
	result := report.Result

	label := report.Label
	if useColor {
		label = contract.GetColorLabel(result.AvailabilityPercent(), result.AvailabilityDefined)
	}

	// 1. Summary table
	summary := tablewriter.NewWriter(w)
	summary.Header([]string{"Metric", "Value"})
	summary.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := summary.Bulk([][]string{
		{"Running (s)", strconv.FormatInt(result.RunningSeconds, 10)},
		{"Faulted (s)", strconv.FormatInt(result.FaultedSeconds, 10)},
		{"Availability", formatAvailability(result, fmtFloat)},
		{"Label", label},
		{"Rows", strconv.Itoa(result.RowsSeen)},
	}); err != nil {
		return err
	}
	if err := summary.Render(); err != nil {
		return err
	}

	// 2. Ranked alarms table
	if len(report.Alarms) > 0 {
		alarms := tablewriter.NewWriter(w)
		alarms.Header([]string{"Rank", "Alarm Code", "Duration (s)", "Share"})
		alarms.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, a := range report.Alarms {
			data = append(data, []string{
				strconv.Itoa(a.Rank),
				strconv.Itoa(a.Code),
				strconv.FormatInt(a.DurationSeconds, 10),
				fmtFloat(a.SharePercent) + "%",
			})
		}
		if err := alarms.Bulk(data); err != nil {
			return err
		}
		if err := alarms.Render(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Showing top %d alarm codes (total accounted: %d seconds)\n", len(report.Alarms), result.TotalSeconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Analysis of %s completed in %v\n", report.Source, duration); err != nil {
		return err
	}
	return nil
}

// writeReportCSV writes one row per ranked alarm, each carrying the run summary.
// A report without alarms produces a single row with empty alarm columns.
func writeReportCSV(w io.Writer, report schema.Report, fmtFloat func(float64) string) error {
	header := []string{
		"run_id",
		"source",
		"running_seconds",
		"faulted_seconds",
		"availability",
		"label",
		"rank",
		"alarm_code",
		"duration_seconds",
		"share_percent",
	}
	result := report.Result
	availability := ""
	if result.AvailabilityDefined {
		availability = fmtFloat(result.AvailabilityPercent())
	}
	summary := []string{
		report.RunID,
		report.Source,
		strconv.FormatInt(result.RunningSeconds, 10),
		strconv.FormatInt(result.FaultedSeconds, 10),
		availability,
		report.Label,
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		if len(report.Alarms) == 0 {
			return cw.Write(append(summary, "", "", "", ""))
		}
		for _, a := range report.Alarms {
			row := append(append([]string{}, summary...),
				strconv.Itoa(a.Rank),
				strconv.Itoa(a.Code),
				strconv.FormatInt(a.DurationSeconds, 10),
				fmtFloat(a.SharePercent),
			)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
