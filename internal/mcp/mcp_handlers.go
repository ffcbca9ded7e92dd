package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/statelog/core"
	"github.com/huangsam/statelog/internal/contract"
	"github.com/huangsam/statelog/internal/csvlog"
	"github.com/huangsam/statelog/internal/logger"
	"github.com/huangsam/statelog/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// inlineSource names reports built from inline content.
const inlineSource = "inline"

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleAnalyzeStateLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = logger.WithName(ctx, "mcp")
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.InputPath = p
	}
	if l := request.GetInt("limit", 0); l != 0 {
		if l < 0 || l > schema.MaxTopAlarms {
			return mcp.NewToolResultError(fmt.Sprintf("invalid limit %d: must be between 1 and %d", l, schema.MaxTopAlarms)), nil
		}
		cfg.ResultLimit = l
	}
	cfg.RequireData = request.GetBool("require_data", cfg.RequireData)

	var (
		report schema.Report
		err    error
	)
	if content := request.GetString("content", ""); content != "" {
		report, err = core.AnalyzeReport(ctx, cfg, inlineSource, csvlog.FromReader(strings.NewReader(content)))
	} else {
		report, err = core.AnalyzeFile(ctx, cfg)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed (%s, exit code %d): %v",
			core.Classify(err), core.ExitCode(err), err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// exitCodeEntry describes one failure kind for explain_exit_code.
type exitCodeEntry struct {
	Kind     schema.FailureKind `json:"kind"`
	ExitCode int                `json:"exit_code"`
}

func (h *toolHandler) handleExplainExitCode(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := make([]exitCodeEntry, 0, len(failureKinds))
	for _, kind := range failureKinds {
		entries = append(entries, exitCodeEntry{Kind: kind, ExitCode: kind.ExitCode()})
	}
	jsonData, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
