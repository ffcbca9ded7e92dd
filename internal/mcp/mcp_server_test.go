package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/statelog/internal/contract"
	mcp_internal "github.com/huangsam/statelog/internal/mcp"
	"github.com/huangsam/statelog/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = "State,Timestamp,AlarmCode\n" +
	"running,2024-01-01 08:00:00,\n" +
	"faulted,2024-01-01 08:00:10,7\n" +
	"running,2024-01-01 08:00:20,\n"

func baseConfig() *contract.Config {
	return &contract.Config{
		InputPath:   contract.DefaultInputPath,
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Output:      schema.JSONOut,
	}
}

func call(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(baseConfig(), "test")
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func text(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func TestAnalyzeStateLogInline(t *testing.T) {
	res := call(t, mcp_internal.AnalyzeToolName, map[string]any{"content": sampleLog})
	require.False(t, res.IsError, text(res))

	var report schema.Report
	require.NoError(t, json.Unmarshal([]byte(text(res)), &report))
	assert.Equal(t, "inline", report.Source)
	assert.Equal(t, int64(10), report.Result.RunningSeconds)
	assert.Equal(t, int64(10), report.Result.FaultedSeconds)
	require.Len(t, report.Alarms, 1)
	assert.Equal(t, 7, report.Alarms[0].Code)
}

func TestAnalyzeStateLogPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o644))

	res := call(t, mcp_internal.AnalyzeToolName, map[string]any{"path": path, "limit": 1.0})
	require.False(t, res.IsError, text(res))
	assert.Contains(t, text(res), `"source": "`+path+`"`)
}

func TestAnalyzeStateLogFailures(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		expected string
	}{
		{
			name:     "missing path",
			args:     map[string]any{"path": filepath.Join(t.TempDir(), "missing.csv")},
			expected: "source_unavailable, exit code 1",
		},
		{
			name:     "bad alarm code",
			args:     map[string]any{"content": "h,h,h\nrunning,2024-01-01,ABC\n"},
			expected: "malformed_alarm_code, exit code 2",
		},
		{
			name:     "out of order",
			args:     map[string]any{"content": "h,h,h\nrunning,2024-01-02,\nrunning,2024-01-01,\n"},
			expected: "out_of_order_timestamps, exit code 3",
		},
		{
			name:     "require data",
			args:     map[string]any{"content": "h,h,h\nrunning,2024-01-01,\n", "require_data": true},
			expected: "insufficient_data, exit code 4",
		},
		{
			name:     "limit too large",
			args:     map[string]any{"content": sampleLog, "limit": 9.0},
			expected: "invalid limit 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := call(t, mcp_internal.AnalyzeToolName, tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, text(res), tt.expected)
		})
	}
}

func TestExplainExitCode(t *testing.T) {
	res := call(t, mcp_internal.ExitCodeToolName, nil)
	require.False(t, res.IsError)

	var entries []struct {
		Kind     string `json:"kind"`
		ExitCode int    `json:"exit_code"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(res)), &entries))
	require.Len(t, entries, 7)
	assert.Equal(t, "source_unavailable", entries[0].Kind)
	assert.Equal(t, 1, entries[0].ExitCode)
	assert.Equal(t, 3, entries[4].ExitCode)
}
