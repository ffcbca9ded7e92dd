package cmd

import (
	"github.com/huangsam/statelog/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the statelog MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents analyze machine state logs.

Tools:
- analyze_state_log: availability report for a log path or inline CSV content
- explain_exit_code: failure kinds and their CLI exit codes`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, version)
	},
}
