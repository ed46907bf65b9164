package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trustgate/trustgate/core"
	"github.com/trustgate/trustgate/internal/contract"
)

// metricsCmd displays the formal definitions of all trust components.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display component weights and definitions for the trust index",
	Long: `Show the components, weights, and tier bands behind the trust index.

Provides complete transparency into how datasets are scored, including:
- What each of the six components measures
- The weight each component contributes
- The score bands that map to trust tiers
- Custom weights if configured via .trustgate.yaml

No dataset is read - this is purely informational.

Examples:
  # Show the default scoring model
  trustgate metrics

  # View with custom weights from config file
  trustgate metrics --config .trustgate.yaml`,
	PreRunE: serverSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrustMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
