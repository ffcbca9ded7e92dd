// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/statelog/internal/contract"
	"github.com/huangsam/statelog/internal/parquet"
	"github.com/huangsam/statelog/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints an analysis report using the configured output format.
func (ow *OutWriter) WriteReport(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return WriteReportResults(report, cfg, duration)
}

// WriteReportResults outputs the report, dispatching based on the output format configured.
func WriteReportResults(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, writerFor(report, writeJSON), "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.YAMLOut:
		if err := writeWithFile(cfg.OutputFile, writerFor(report, writeYAML), "Wrote YAML"); err != nil {
			return fmt.Errorf("error writing YAML output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, reportWriter(report, fmtFloat, writeReportCSV), "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeWithFile(cfg.OutputFile, reportWriter(report, fmtFloat, writeReportXLSX), "Wrote XLSX"); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	case schema.PDFOut:
		if err := writeWithFile(cfg.OutputFile, reportWriter(report, fmtFloat, writeReportPDF), "Wrote PDF"); err != nil {
			return fmt.Errorf("error writing PDF output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteReport(report, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s and %s\n", cfg.OutputFile, parquet.AlarmsPath(cfg.OutputFile))
	case schema.TableOut:
		useColor := shouldUseColor(cfg)
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, report, cfg, fmtFloat, useColor, duration)
		}, "Wrote table")
	default:
		// Default to the plain text summary
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, report.Result, cfg, fmtFloat)
		}, "Wrote text")
	}
	return nil
}

// shouldUseColor reports whether table labels may carry ANSI colors.
// Colors need the flag, stdout as destination and an interactive terminal.
func shouldUseColor(cfg *contract.Config) bool {
	return cfg.UseColors && cfg.OutputFile == "" && term.IsTerminal(int(os.Stdout.Fd()))
}
