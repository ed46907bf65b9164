package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMetricsRenderModel(t *testing.T) {
	model := BuildMetricsRenderModel(DefaultTrustWeights())

	assert.Equal(t, "Trust Index Components", model.Title)
	assert.Len(t, model.Components, 6)
	assert.Len(t, model.Tiers, 4)

	// Components follow the canonical order and carry the right weights.
	for i, key := range ComponentOrder {
		assert.Equal(t, key, model.Components[i].Key)
		assert.NotEmpty(t, model.Components[i].Description)
	}
	assert.Equal(t, 0.22, model.Components[0].Weight)

	// Tiers descend from the strongest band.
	assert.Equal(t, TierDecisionReady, model.Tiers[0].Tier)
	assert.Equal(t, 0.80, model.Tiers[0].MinScore)
	assert.Equal(t, TierNotTrustworthy, model.Tiers[3].Tier)
	assert.Equal(t, 0.0, model.Tiers[3].MinScore)
}

func TestBuildMetricsRenderModelCustomWeights(t *testing.T) {
	weights := DefaultTrustWeights()
	weights[ComponentStructural] = 0.5

	model := BuildMetricsRenderModel(weights)
	assert.Equal(t, 0.5, model.Components[0].Weight)
}
