package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/statelog/internal/contract"
	"github.com/huangsam/statelog/internal/csvlog"
	"github.com/huangsam/statelog/internal/logger"
	"github.com/huangsam/statelog/internal/metrics"
	"github.com/huangsam/statelog/schema"
)

// Analyze performs one pass over source. The first record is the header and is
// skipped by index; every later record is decoded and folded in order. The pass is
// all-or-nothing: the first failure aborts it and no partial result is returned.
func Analyze(ctx context.Context, cfg *contract.Config, source contract.RowSource) (schema.AnalysisResult, error) {
	ctx = logger.WithName(ctx, "analysis")
	state := NewAccountingState()

	for row := 0; ; row++ {
		if err := ctx.Err(); err != nil {
			return schema.AnalysisResult{}, schema.NewAnalysisError(schema.Unclassified, row, err)
		}

		record, err := source.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return schema.AnalysisResult{}, readFailure(row, err)
		}
		if row == 0 {
			continue // header
		}

		event, err := DecodeRow(record, row)
		if err != nil {
			return schema.AnalysisResult{}, err
		}
		if err := state.Fold(event, row); err != nil {
			return schema.AnalysisResult{}, err
		}
		logger.DebugKV(ctx, "Folded row", "row", row, "running", event.Running,
			"running_seconds", state.RunningSeconds(), "faulted_seconds", state.FaultedSeconds())
	}

	limit := cfg.ResultLimit
	if limit <= 0 {
		limit = schema.MaxTopAlarms
	}
	return Aggregate(state, limit, cfg.RequireData)
}

// readFailure classifies an error returned by the row source.
func readFailure(row int, err error) error {
	if errors.Is(err, schema.ErrMalformedRecord) {
		return schema.NewAnalysisError(schema.MalformedRecord, row, err)
	}
	return schema.NewAnalysisError(schema.Unclassified, row, fmt.Errorf("failed to read record: %w", err))
}

// AnalyzeReport analyzes source and wraps the result in a Report named after source.
// Every outcome is recorded in the analysis metrics.
func AnalyzeReport(ctx context.Context, cfg *contract.Config, name string, source contract.RowSource) (schema.Report, error) {
	ctx = logger.WithKV(ctx, "source", name)
	start := time.Now()

	result, err := Analyze(ctx, cfg, source)
	elapsed := time.Since(start)
	metrics.ObserveAnalysis(result, Classify(err), elapsed)
	if err != nil {
		logger.WarnKV(ctx, "Analysis failed", "kind", Classify(err), "error", err)
		return schema.Report{}, err
	}

	logger.InfoKV(ctx, "Analysis completed", "rows", result.RowsSeen,
		"availability_defined", result.AvailabilityDefined, "elapsed", elapsed)
	return NewReport(name, result, time.Now().UTC()), nil
}

// AnalyzeFile opens cfg.InputPath and analyzes it.
func AnalyzeFile(ctx context.Context, cfg *contract.Config) (schema.Report, error) {
	src, err := csvlog.Open(cfg.InputPath)
	if err != nil {
		metrics.ObserveAnalysis(schema.AnalysisResult{}, Classify(err), 0)
		logger.WarnKV(ctx, "Input unavailable", "path", cfg.InputPath, "error", err)
		return schema.Report{}, err
	}
	defer func() { _ = src.Close() }()

	return AnalyzeReport(ctx, cfg, cfg.InputPath, src)
}
