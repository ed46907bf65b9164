package core

import (
	"github.com/trustgate/trustgate/schema"
)

// governanceToTrust converts governance risk (higher = worse) into a trust
// component (higher = better).
func governanceToTrust(risk float64) float64 {
	return max(0.0, 1.0-risk)
}

// prepBurdenToTrust converts preparation complexity (higher = more effort)
// into a trust component (higher = better).
func prepBurdenToTrust(prep float64) float64 {
	return max(0.0, 1.0-prep)
}

// ComputeTrustIndex folds the five layer results into the Enterprise Data
// Trust Index: a fixed-weight composite over six 0-1 components where
// higher always means better, plus the tier, the component breakdown and
// the inverse risk heatmap.
func ComputeTrustIndex(
	weights map[schema.ComponentKey]float64,
	structural schema.StructuralResult,
	governance schema.GovernanceResult,
	operational schema.OperationalResult,
	logical schema.LogicalResult,
	analytical schema.AnalyticalResult,
) schema.TrustResult {
	gTrust := governanceToTrust(governance.GovernanceRiskScore)
	prepTrust := prepBurdenToTrust(analytical.PreparationComplexityScore)

	componentScores := map[schema.ComponentKey]float64{
		schema.ComponentStructural:      structural.StructuralIntegrityScore,
		schema.ComponentGovernanceTrust: gTrust,
		schema.ComponentOperational:     operational.TemporalReliabilityScore,
		schema.ComponentLogical:         logical.LogicalIntegrityScore,
		schema.ComponentUtility:         analytical.AnalyticsUtilityScore,
		schema.ComponentPreparation:     prepTrust,
	}

	var edti float64
	for key, score := range componentScores {
		edti += weights[key] * score
	}
	edti = round4(clamp01(edti))

	riskHeatmap := map[schema.RiskCategoryKey]float64{
		schema.RiskStructural:  1.0 - structural.StructuralIntegrityScore,
		schema.RiskGovernance:  governance.GovernanceRiskScore,
		schema.RiskOperational: 1.0 - operational.TemporalReliabilityScore,
		schema.RiskLogical:     1.0 - logical.LogicalIntegrityScore,
		schema.RiskAnalytical:  1.0 - analytical.AnalyticsUtilityScore,
		schema.RiskPreparation: analytical.PreparationComplexityScore,
	}

	return schema.TrustResult{
		EDTIScore:       edti,
		TrustTier:       schema.TierFor(edti),
		ComponentScores: componentScores,
		RiskHeatmap:     riskHeatmap,
	}
}
