package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/statelog/schema"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX export.
const (
	summarySheet = "summary"
	alarmsSheet  = "alarms"
)

// writeReportXLSX renders a two-sheet workbook: run summary and ranked alarms.
func writeReportXLSX(w io.Writer, report schema.Report, fmtFloat func(float64) string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(alarmsSheet); err != nil {
		return err
	}

	result := report.Result
	rows := [][2]any{
		{"Run ID", report.RunID},
		{"Source", report.Source},
		{"Generated", report.GeneratedAt.Format(time.RFC3339)},
		{"Running (s)", result.RunningSeconds},
		{"Faulted (s)", result.FaultedSeconds},
		{"Availability", formatAvailability(result, fmtFloat)},
		{"Label", report.Label},
		{"Rows", result.RowsSeen},
	}
	cw := &cellWriter{f: f}
	cw.set(summarySheet, "A1", "Machine Availability Report")
	for i, row := range rows {
		line := i + 3
		cw.set(summarySheet, fmt.Sprintf("A%d", line), row[0])
		cw.set(summarySheet, fmt.Sprintf("B%d", line), row[1])
	}

	cw.set(alarmsSheet, "A1", "Rank")
	cw.set(alarmsSheet, "B1", "Alarm Code")
	cw.set(alarmsSheet, "C1", "Duration (s)")
	cw.set(alarmsSheet, "D1", "Share (%)")
	for i, a := range report.Alarms {
		line := i + 2
		cw.set(alarmsSheet, fmt.Sprintf("A%d", line), a.Rank)
		cw.set(alarmsSheet, fmt.Sprintf("B%d", line), a.Code)
		cw.set(alarmsSheet, fmt.Sprintf("C%d", line), a.DurationSeconds)
		cw.set(alarmsSheet, fmt.Sprintf("D%d", line), a.SharePercent)
	}
	if cw.err != nil {
		return fmt.Errorf("failed to fill workbook: %w", cw.err)
	}

	return f.Write(w)
}

// cellWriter sets workbook cells and keeps the first error.
// Once an error is recorded later calls are no-ops.
type cellWriter struct {
	f   *excelize.File
	err error
}

func (c *cellWriter) set(sheet, cell string, value any) {
	if c.err != nil {
		return
	}
	if err := c.f.SetCellValue(sheet, cell, value); err != nil {
		c.err = fmt.Errorf("cell %s!%s: %w", sheet, cell, err)
	}
}

// writeReportPDF renders a one-page summary with the ranked alarm table.
func writeReportPDF(w io.Writer, report schema.Report, fmtFloat func(float64) string) error {
	result := report.Result

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Machine Availability Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Source: %s", report.Source))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Run: %s", report.RunID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(5)

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Running time: %d seconds", result.RunningSeconds))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Faulted time: %d seconds", result.FaultedSeconds))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Availability: %s (%s)", formatAvailability(result, fmtFloat), report.Label))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(20, 6, "Rank", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Alarm Code", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Duration (s)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Share (%)", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, a := range report.Alarms {
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", a.Rank), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", a.Code), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", a.DurationSeconds), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmtFloat(a.SharePercent), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
