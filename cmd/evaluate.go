package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trustgate/trustgate/core"
	"github.com/trustgate/trustgate/internal/contract"
)

// evaluateCmd performs a full trust evaluation of a dataset.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [dataset-path]",
	Short: "Evaluate a dataset and print its trust index and quality flags.",
	Long: `Profile a tabular dataset and score it across five quality dimensions.

Runs all evaluators (structural, governance, operational, logical, analytical)
and combines them into a single trust index between 0.0 and 1.0, helping you:
- Decide whether a dataset is ready for reporting or modeling
- Spot schema problems like duplicate rows and near-constant columns
- Find governance exposure such as email or SSN shaped columns
- Catch stale or gappy time coverage before it skews results
- Surface relational contradictions like profit exceeding revenue

Examples:
  # Evaluate a CSV file
  trustgate evaluate sales.csv

  # Force the parser for an unconventional extension
  trustgate evaluate dump.dat --file-type csv

  # Evaluate a warehouse table
  trustgate evaluate --db-backend postgresql --db-connect "host=... dbname=..." --table orders

  # Export the full result for tracking
  trustgate evaluate sales.csv --output parquet --output-file trust.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrustEvaluate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run evaluation", err)
		}
	},
}
