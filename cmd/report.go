package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trustgate/trustgate/core"
	"github.com/trustgate/trustgate/internal/contract"
)

// reportCmd renders the executive summary for non-technical readers.
var reportCmd = &cobra.Command{
	Use:   "report [dataset-path]",
	Short: "Generate a plain-language executive summary of dataset trust.",
	Long: `Evaluate a dataset and render the findings as a narrative report.

The report walks through the overall verdict, each quality dimension, and
the concrete flags behind the scores, in language suitable for stakeholders
who will never read a JSON payload.

Examples:
  # Print the summary to the terminal
  trustgate report sales.csv

  # Save it for a data review meeting
  trustgate report sales.csv --output-file trust-review.txt

  # Machine-readable wrapper around the same text
  trustgate report sales.csv --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrustReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot generate report", err)
		}
	},
}
