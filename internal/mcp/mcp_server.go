// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/statelog/internal/contract"
	"github.com/huangsam/statelog/internal/logger"
	"github.com/huangsam/statelog/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Tool names exposed by the server.
const (
	AnalyzeToolName  = "analyze_state_log"
	ExitCodeToolName = "explain_exit_code"
)

// NewMCPServer initializes and configures the statelog MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Statelog Availability Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: analyze_state_log ---
	s.AddTool(mcp.NewTool(AnalyzeToolName,
		mcp.WithDescription("Compute running time, faulted time, availability and the top alarm codes of a machine state log (CSV: state,timestamp,alarm code with a header row)."),
		mcp.WithString("path", mcp.Description("Path to the CSV log (defaults to the configured input path).")),
		mcp.WithString("content", mcp.Description("Inline CSV log content. Takes precedence over path.")),
		mcp.WithNumber("limit", mcp.Description("Number of top alarm codes to return (1-5).")),
		mcp.WithBoolean("require_data", mcp.Description("Fail when no time elapsed instead of reporting availability as not applicable.")),
	), h.handleAnalyzeStateLog)

	// --- 2. Tool: explain_exit_code ---
	s.AddTool(mcp.NewTool(ExitCodeToolName,
		mcp.WithDescription("List the failure kinds of an analysis and the CLI exit code each one maps to."),
	), h.handleExplainExitCode)

	return s
}

// StartMCPServer starts the statelog MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, version string) error {
	s := NewMCPServer(baseCfg, version)
	errLog := zap.NewStdLog(logger.Logger().Named("mcp").Desugar())
	return server.ServeStdio(s, server.WithErrorLogger(errLog))
}

// failureKinds lists every failure kind in exit code order.
var failureKinds = []schema.FailureKind{
	schema.SourceUnavailable,
	schema.MalformedTimestamp,
	schema.MalformedAlarmCode,
	schema.MalformedRecord,
	schema.OutOfOrderTimestamps,
	schema.InsufficientData,
	schema.Unclassified,
}
