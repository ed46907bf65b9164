package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trustgate/trustgate/core"
	"github.com/trustgate/trustgate/internal/contract"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check [dataset-path]",
	Short: "Enforce trust thresholds for CI/CD pipelines (fails build on violations)",
	Long: `Evaluate a dataset and enforce a minimum trust score or tier.

Designed specifically for CI/CD integration - fails with non-zero exit code
when the dataset scores below the configured gate.

Use cases:
- Pipeline gates - block deployments fed by untrusted data
- Ingestion validation - reject upstream drops that degraded in quality
- Contract enforcement - hold vendors to an agreed trust tier
- Prevent regression - catch quality drops automatically

Examples:
  # Require a minimum trust index
  trustgate check sales.csv --min-score 0.7

  # Require at least the review tier
  trustgate check sales.csv --min-tier review-recommended

  # Gate a warehouse table
  trustgate check --db-backend postgresql --db-connect "host=... dbname=..." --table orders --min-score 0.6`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Gate evaluation is done in ExecuteTrustCheck
		if err := core.ExecuteTrustCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Trust gate failed", err)
		}
	},
}
