package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/internal/parquet"
	"github.com/trustgate/trustgate/schema"
)

// Display caps for flag lists in table output; --detail lifts them.
const (
	maxTableFlags      = 10
	maxTableViolations = 5
)

// WriteEvaluationResults outputs a full evaluation, dispatching based on
// the output format configured.
func WriteEvaluationResults(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeEvaluationJSONResults(profile, bundle, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeEvaluationCSVResults(profile, bundle, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteEvaluationParquet(profile, bundle, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEvaluationTables(profile, bundle, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeEvaluationJSONResults handles opening the file and calling the JSON writer.
func writeEvaluationJSONResults(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONEvaluation struct {
			Metadata schema.InputMetadata `json:"metadata"`
			*schema.EvaluationBundle
		}
		return writeJSON(w, JSONEvaluation{
			Metadata:         profile.Metadata,
			EvaluationBundle: bundle,
		})
	}, "Wrote JSON")
}

// writeEvaluationCSVResults flattens the evaluation into component rows.
func writeEvaluationCSVResults(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"section", "key", "value"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			trust := bundle.Trust
			rows := [][]string{
				{"summary", "edti_score", fmtScore(trust.EDTIScore)},
				{"summary", "trust_tier", contract.GetPlainTierLabel(trust.TrustTier)},
				{"summary", "rows", fmt.Sprintf("%d", profile.Metadata.RecordCount)},
				{"summary", "columns", fmt.Sprintf("%d", profile.Metadata.ColumnCount)},
				{"summary", "sensitivity", string(bundle.Governance.SensitivityClassification)},
			}
			for _, key := range schema.ComponentOrder {
				rows = append(rows, []string{"component", string(key), fmtScore(trust.ComponentScores[key])})
			}
			for _, key := range schema.RiskCategoryOrder {
				rows = append(rows, []string{"risk", string(key), fmtScore(trust.RiskHeatmap[key])})
			}
			for _, flag := range bundle.Structural.StructuralRiskFlags {
				rows = append(rows, []string{"structural_flag", "", flag})
			}
			for _, flag := range bundle.Governance.RiskFlags {
				rows = append(rows, []string{"governance_flag", "", flag})
			}
			for _, flag := range bundle.Operational.OperationalRiskFlags {
				rows = append(rows, []string{"operational_flag", "", flag})
			}
			for _, violation := range bundle.Logical.ViolationsSummary {
				rows = append(rows, []string{"logical_violation", "", violation})
			}
			for _, row := range rows {
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeEvaluationTables generates and writes the human-readable tables.
func writeEvaluationTables(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	trust := bundle.Trust
	meta := profile.Metadata

	header := "Enterprise Data Trust Index"
	if cfg.UseEmojis {
		header = "🛡️ " + header
	}
	tierLabel := contract.GetPlainTierLabel(trust.TrustTier)
	if cfg.UseColors {
		tierLabel = contract.GetColorTierLabel(trust.TrustTier)
	}
	if _, err := fmt.Fprintf(writer, "%s\n", header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Score: %.4f (%s)\n", trust.EDTIScore, tierLabel); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Dataset: %d rows x %d columns (%s), numeric density %s\n\n",
		meta.RecordCount, meta.ColumnCount, meta.FileType, fmtPercent(meta.NumericDensity)); err != nil {
		return err
	}

	if err := writeComponentTable(trust, writer); err != nil {
		return err
	}
	if err := writeHeatmapTable(trust, writer); err != nil {
		return err
	}
	if err := writeFlagsSection(bundle, cfg, writer); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Evaluation completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

func writeComponentTable(trust *schema.TrustResult, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Component", "Score"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range schema.ComponentOrder {
		data = append(data, []string{string(key), fmtScore(trust.ComponentScores[key])})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(writer)
	return err
}

func writeHeatmapTable(trust *schema.TrustResult, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Risk Category", "Risk"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range schema.RiskCategoryOrder {
		data = append(data, []string{string(key), fmtScore(trust.RiskHeatmap[key])})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// writeFlagsSection lists layer findings, truncated unless --detail is set.
func writeFlagsSection(bundle *schema.EvaluationBundle, cfg *contract.Config, writer io.Writer) error {
	maxWidth := GetMaxTableCellWidth(cfg)

	sections := []struct {
		title string
		lines []string
	}{
		{"Structural flags", capList(bundle.Structural.StructuralRiskFlags, maxTableFlags, cfg.Detail)},
		{"Governance flags", capList(bundle.Governance.RiskFlags, maxTableFlags, cfg.Detail)},
		{"Operational flags", capList(bundle.Operational.OperationalRiskFlags, maxTableViolations, cfg.Detail)},
		{"Logical violations", capList(bundle.Logical.ViolationsSummary, maxTableViolations, cfg.Detail)},
	}

	sensitivity := string(bundle.Governance.SensitivityClassification)
	if cfg.UseColors {
		sensitivity = contract.GetColorSensitivityLabel(bundle.Governance.SensitivityClassification)
	}
	if _, err := fmt.Fprintf(writer, "Sensitivity classification: %s (risk %.4f)\n",
		sensitivity, bundle.Governance.GovernanceRiskScore); err != nil {
		return err
	}
	if lag := bundle.Operational.LatestUpdateLagDays; lag != nil {
		if _, err := fmt.Fprintf(writer, "Latest update lag: %.2f days\n", *lag); err != nil {
			return err
		}
	}
	if density := bundle.Analytical.AnomalyDensity; density != nil {
		if _, err := fmt.Fprintf(writer, "Anomaly density: %s\n", fmtPercent(*density)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}

	for _, section := range sections {
		if len(section.lines) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(writer, "%s:\n", section.title); err != nil {
			return err
		}
		for _, line := range section.lines {
			if _, err := fmt.Fprintf(writer, "  - %s\n", contract.TruncateCell(line, maxWidth)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	if columns := bundle.Analytical.LowVarianceColumns; len(columns) > 0 {
		if _, err := fmt.Fprintf(writer, "Low variance columns: %s\n", strings.Join(columns, ", ")); err != nil {
			return err
		}
	}
	if columns := bundle.Analytical.HighSkewColumns; len(columns) > 0 {
		if _, err := fmt.Fprintf(writer, "High skew columns: %s\n", strings.Join(columns, ", ")); err != nil {
			return err
		}
	}
	if columns := bundle.Analytical.HighVIFColumns; len(columns) > 0 {
		if _, err := fmt.Fprintf(writer, "High VIF columns: %s\n", strings.Join(columns, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// capList limits a list for display; detail mode shows everything.
func capList(items []string, limit int, detail bool) []string {
	if detail || len(items) <= limit {
		return items
	}
	capped := make([]string, 0, limit+1)
	capped = append(capped, items[:limit]...)
	capped = append(capped, fmt.Sprintf("... and %d more", len(items)-limit))
	return capped
}
