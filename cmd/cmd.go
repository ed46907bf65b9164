// Package cmd defines the command-line interface for trustgate.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("file-type", "", "Source format override: csv, tsv, json, parquet, sql (default: detect from extension)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("detail", false, "Print every quality flag instead of capped lists")
	rootCmd.PersistentFlags().String("db-backend", string(schema.NoneBackend), "Database backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for sqlite/mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("table", "", "Database table to evaluate (required with a db backend)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().Float64("min-score", contract.DefaultMinScore, "Minimum trust index required to pass (0.0-1.0)")
	checkCmd.Flags().String("min-tier", "", "Minimum trust tier required to pass (e.g. 'review-recommended')")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}
}
