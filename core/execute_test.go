package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/schema"
)

func gateBundle(score float64) *schema.EvaluationBundle {
	return &schema.EvaluationBundle{
		Trust: &schema.TrustResult{
			EDTIScore: score,
			TrustTier: schema.TierFor(score),
		},
	}
}

func TestBuildCheckResult(t *testing.T) {
	tests := []struct {
		name        string
		score       float64
		minScore    float64
		minTier     schema.TrustTier
		wantPassed  bool
		wantReasons int
	}{
		{
			name:       "passes default gate",
			score:      0.85,
			minScore:   0.0,
			wantPassed: true,
		},
		{
			name:        "fails min score",
			score:       0.55,
			minScore:    0.7,
			wantPassed:  false,
			wantReasons: 1,
		},
		{
			name:       "passes min tier",
			score:      0.85,
			minTier:    schema.TierReviewRecommended,
			wantPassed: true,
		},
		{
			name:        "fails min tier",
			score:       0.65,
			minTier:     schema.TierDecisionReady,
			wantPassed:  false,
			wantReasons: 1,
		},
		{
			name:        "fails both gates",
			score:       0.3,
			minScore:    0.6,
			minTier:     schema.TierReviewRecommended,
			wantPassed:  false,
			wantReasons: 2,
		},
		{
			name:       "boundary score passes",
			score:      0.7,
			minScore:   0.7,
			wantPassed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{MinScore: tt.minScore, MinTier: tt.minTier}
			result := BuildCheckResult(gateBundle(tt.score), cfg)

			assert.Equal(t, tt.wantPassed, result.Passed)
			assert.Len(t, result.Reasons, tt.wantReasons)
			assert.Equal(t, tt.score, result.EDTIScore)
		})
	}
}

func TestBuildCheckResultReasonText(t *testing.T) {
	cfg := &contract.Config{MinScore: 0.9, MinTier: schema.TierDecisionReady}
	result := BuildCheckResult(gateBundle(0.5), cfg)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Reasons[0], "EDTI 0.5000 below minimum score 0.9000")
	assert.Contains(t, result.Reasons[1], `tier "Risk Present" below minimum tier "Decision-Ready"`)
}
