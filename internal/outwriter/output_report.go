package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/schema"
)

// ReportTitle is the default heading of the executive summary.
const ReportTitle = "Trustgate Executive Summary"

// WriteReportResults renders the executive summary. The summary is a
// plain-text artifact, so only the JSON mode changes the encoding; CSV
// and parquet make no sense for prose and fall back to text.
func WriteReportResults(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]string{
				"title":   ReportTitle,
				"summary": GenerateExecutiveSummary(profile, bundle, ReportTitle),
			})
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		_, err := io.WriteString(w, GenerateExecutiveSummary(profile, bundle, ReportTitle))
		return err
	}, "Wrote report")
}

// GenerateExecutiveSummary produces a text executive summary suitable for
// download or CI artifacts.
func GenerateExecutiveSummary(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, title string) string {
	var out strings.Builder
	meta := profile.Metadata
	trust := bundle.Trust
	if trust == nil {
		return "No trust result available."
	}

	fmt.Fprintf(&out, "%s\n", title)
	fmt.Fprintf(&out, "%s\n\n", strings.Repeat("=", 60))

	fmt.Fprintf(&out, "1. Dataset Overview\n")
	fmt.Fprintf(&out, "   Rows: %d, Columns: %d\n", meta.RecordCount, meta.ColumnCount)
	fmt.Fprintf(&out, "   File type: %s\n", meta.FileType)
	fmt.Fprintf(&out, "   Numeric density: %s\n", fmtPercent(meta.NumericDensity))
	fmt.Fprintf(&out, "   Has timestamp: %t, Has text: %t\n\n", meta.HasTimestamp, meta.HasText)

	fmt.Fprintf(&out, "2. Enterprise Data Trust Index (EDTI)\n")
	fmt.Fprintf(&out, "   Score: %.2f\n", trust.EDTIScore)
	fmt.Fprintf(&out, "   Tier: %s\n\n", trust.TrustTier)

	fmt.Fprintf(&out, "3. Component Scores\n")
	for _, key := range schema.ComponentOrder {
		fmt.Fprintf(&out, "   %s: %.2f\n", key, trust.ComponentScores[key])
	}

	fmt.Fprintf(&out, "\n4. Risk Heatmap (higher = more risk)\n")
	for _, key := range schema.RiskCategoryOrder {
		fmt.Fprintf(&out, "   %s: %.2f\n", key, trust.RiskHeatmap[key])
	}

	fmt.Fprintf(&out, "\n5. Structural Reliability\n")
	fmt.Fprintf(&out, "   Score: %.2f\n", bundle.Structural.StructuralIntegrityScore)
	for _, flag := range headOf(bundle.Structural.StructuralRiskFlags, 10) {
		fmt.Fprintf(&out, "   - %s\n", flag)
	}

	fmt.Fprintf(&out, "\n6. Governance & Sensitivity\n")
	fmt.Fprintf(&out, "   Classification: %s\n", bundle.Governance.SensitivityClassification)
	for _, flag := range headOf(bundle.Governance.RiskFlags, 10) {
		fmt.Fprintf(&out, "   - %s\n", flag)
	}

	fmt.Fprintf(&out, "\n7. Operational Stability\n")
	fmt.Fprintf(&out, "   Score: %.2f\n", bundle.Operational.TemporalReliabilityScore)
	for _, flag := range headOf(bundle.Operational.OperationalRiskFlags, 5) {
		fmt.Fprintf(&out, "   - %s\n", flag)
	}

	fmt.Fprintf(&out, "\n8. Logical Integrity\n")
	fmt.Fprintf(&out, "   Score: %.2f, Violation rate: %s\n",
		bundle.Logical.LogicalIntegrityScore, fmtPercent(bundle.Logical.ViolationRate))
	for _, violation := range headOf(bundle.Logical.ViolationsSummary, 5) {
		fmt.Fprintf(&out, "   - %s\n", violation)
	}

	fmt.Fprintf(&out, "\n9. Preparation & Analytical Utility\n")
	fmt.Fprintf(&out, "   Utility: %.2f, Preparation complexity: %.2f\n",
		bundle.Analytical.AnalyticsUtilityScore, bundle.Analytical.PreparationComplexityScore)

	fmt.Fprintf(&out, "\n--- End of Executive Summary ---\n")
	return out.String()
}

func headOf(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
