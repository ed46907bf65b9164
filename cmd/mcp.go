package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trustgate/trustgate/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Trustgate MCP server",
	Long:  `Launch an MCP server that allows AI agents to evaluate dataset trust via standard tools.`,
	// Validation must not print to stdout here because stdio carries
	// the MCP protocol.
	PreRunE: serverSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
