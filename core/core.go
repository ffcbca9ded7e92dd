// Package core has core logic for decoding, accounting and ranking machine state logs.
package core

import (
	"context"
	"time"

	"github.com/huangsam/statelog/internal/contract"
	"github.com/huangsam/statelog/internal/logger"
	"github.com/huangsam/statelog/internal/metrics"
	"github.com/huangsam/statelog/internal/outwriter"
)

// ExecuteAnalysis analyzes the configured log and prints the report.
// It serves as the main entry point for the root command.
func ExecuteAnalysis(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	if cfg.MetricsFile != "" {
		defer writeMetricsFile(cfg.MetricsFile)
	}

	report, err := AnalyzeFile(ctx, cfg)
	if err != nil {
		return err
	}
	if err := outwriter.NewOutWriter().WriteReport(report, cfg, time.Since(start)); err != nil {
		logger.ErrorKV(ctx, "Failed to write report", "output", cfg.Output, "output_file", cfg.OutputFile, "error", err)
		return err
	}
	return nil
}

// writeMetricsFile exports run metrics. A failure here never fails the analysis.
func writeMetricsFile(path string) {
	if err := metrics.WriteTextfile(path); err != nil {
		contract.LogWarn("Failed to write metrics file", err)
	}
}
