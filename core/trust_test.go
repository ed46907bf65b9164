package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trustgate/trustgate/schema"
)

func perfectInputs() (schema.StructuralResult, schema.GovernanceResult, schema.OperationalResult, schema.LogicalResult, schema.AnalyticalResult) {
	return schema.StructuralResult{StructuralIntegrityScore: 1.0},
		schema.GovernanceResult{GovernanceRiskScore: 0.0},
		schema.OperationalResult{TemporalReliabilityScore: 1.0},
		schema.LogicalResult{LogicalIntegrityScore: 1.0},
		schema.AnalyticalResult{AnalyticsUtilityScore: 1.0, PreparationComplexityScore: 0.0}
}

func TestComputeTrustIndexPerfectInputs(t *testing.T) {
	st, gov, op, lg, an := perfectInputs()
	res := ComputeTrustIndex(schema.DefaultTrustWeights(), st, gov, op, lg, an)

	assert.Equal(t, 1.0, res.EDTIScore)
	assert.Equal(t, schema.TierDecisionReady, res.TrustTier)
	assert.Len(t, res.ComponentScores, 6)
	assert.Len(t, res.RiskHeatmap, 6)
	for _, key := range schema.RiskCategoryOrder {
		assert.Equal(t, 0.0, res.RiskHeatmap[key])
	}
}

func TestComputeTrustIndexWorstInputs(t *testing.T) {
	res := ComputeTrustIndex(
		schema.DefaultTrustWeights(),
		schema.StructuralResult{StructuralIntegrityScore: 0.0},
		schema.GovernanceResult{GovernanceRiskScore: 1.0},
		schema.OperationalResult{TemporalReliabilityScore: 0.0},
		schema.LogicalResult{LogicalIntegrityScore: 0.0},
		schema.AnalyticalResult{AnalyticsUtilityScore: 0.0, PreparationComplexityScore: 1.0},
	)

	assert.Equal(t, 0.0, res.EDTIScore)
	assert.Equal(t, schema.TierNotTrustworthy, res.TrustTier)
}

func TestComputeTrustIndexWeightedSum(t *testing.T) {
	st, gov, op, lg, an := perfectInputs()
	st.StructuralIntegrityScore = 0.5 // 0.22 * 0.5 drops EDTI by 0.11

	res := ComputeTrustIndex(schema.DefaultTrustWeights(), st, gov, op, lg, an)

	assert.InDelta(t, 0.89, res.EDTIScore, 1e-9)
	assert.Equal(t, 0.5, res.ComponentScores[schema.ComponentStructural])
	assert.Equal(t, 0.5, res.RiskHeatmap[schema.RiskStructural])
}

func TestComputeTrustIndexGovernanceInversion(t *testing.T) {
	st, gov, op, lg, an := perfectInputs()
	gov.GovernanceRiskScore = 0.85

	res := ComputeTrustIndex(schema.DefaultTrustWeights(), st, gov, op, lg, an)

	assert.InDelta(t, 0.15, res.ComponentScores[schema.ComponentGovernanceTrust], 1e-9)
	assert.Equal(t, 0.85, res.RiskHeatmap[schema.RiskGovernance])
}

func TestComputeTrustIndexPrepInversion(t *testing.T) {
	st, gov, op, lg, an := perfectInputs()
	an.PreparationComplexityScore = 0.3

	res := ComputeTrustIndex(schema.DefaultTrustWeights(), st, gov, op, lg, an)

	assert.InDelta(t, 0.7, res.ComponentScores[schema.ComponentPreparation], 1e-9)
	assert.Equal(t, 0.3, res.RiskHeatmap[schema.RiskPreparation])
}

func TestComputeTrustIndexTierBoundaries(t *testing.T) {
	// Equal weight on one component lets the score hit tiers exactly.
	weights := map[schema.ComponentKey]float64{schema.ComponentStructural: 1.0}

	tests := []struct {
		score    float64
		expected schema.TrustTier
	}{
		{0.80, schema.TierDecisionReady},
		{0.60, schema.TierReviewRecommended},
		{0.40, schema.TierRiskPresent},
		{0.39, schema.TierNotTrustworthy},
	}

	for _, tt := range tests {
		st, gov, op, lg, an := perfectInputs()
		st.StructuralIntegrityScore = tt.score
		res := ComputeTrustIndex(weights, st, gov, op, lg, an)
		assert.Equal(t, tt.expected, res.TrustTier, "score %.2f", tt.score)
	}
}
