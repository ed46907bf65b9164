package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name     string
		edti     float64
		expected TrustTier
	}{
		{"decision ready boundary", 0.80, TierDecisionReady},
		{"just below decision ready", 0.79999, TierReviewRecommended},
		{"review boundary", 0.60, TierReviewRecommended},
		{"just below review", 0.59999, TierRiskPresent},
		{"risk boundary", 0.40, TierRiskPresent},
		{"just below risk", 0.39999, TierNotTrustworthy},
		{"perfect", 1.0, TierDecisionReady},
		{"zero", 0.0, TierNotTrustworthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TierFor(tt.edti))
		})
	}
}

func TestTierRankOrdering(t *testing.T) {
	assert.Greater(t, TierRank(TierDecisionReady), TierRank(TierReviewRecommended))
	assert.Greater(t, TierRank(TierReviewRecommended), TierRank(TierRiskPresent))
	assert.Greater(t, TierRank(TierRiskPresent), TierRank(TierNotTrustworthy))
	assert.Equal(t, 0, TierRank(TrustTier("bogus")))
}

func TestSensitivityRankOrdering(t *testing.T) {
	assert.Equal(t, 2, SensitivityRank(SensitivityHigh))
	assert.Equal(t, 1, SensitivityRank(SensitivityModerate))
	assert.Equal(t, 0, SensitivityRank(SensitivityLow))
}

func TestDefaultTrustWeightsSumToOne(t *testing.T) {
	weights := DefaultTrustWeights()
	assert.Len(t, weights, len(ComponentOrder))

	sum := 0.0
	for _, key := range ComponentOrder {
		w, ok := weights[key]
		assert.True(t, ok, "missing weight for %s", key)
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	assert.Equal(t, 0.95, th.RedundancyCorrelation)
	assert.Equal(t, 10.0, th.VIF)
	assert.Equal(t, 0.95, th.NearConstantShare)
	assert.Equal(t, 1000, th.PatternSampleLimit)
	assert.Equal(t, 0.10, th.AnomalyContamination)
}

func TestComponentAndRiskOrdersAligned(t *testing.T) {
	// The tables render components and risk categories side by side, so
	// the two orders must stay the same length.
	assert.Equal(t, len(ComponentOrder), len(RiskCategoryOrder))
}
