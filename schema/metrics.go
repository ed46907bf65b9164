package schema

// ComponentDefinition describes one weighted trust component for the
// metrics command.
type ComponentDefinition struct {
	Key         ComponentKey `json:"key"`
	Weight      float64      `json:"weight"`
	Description string       `json:"description"`
}

// TierDefinition describes one trust tier and its EDTI band.
type TierDefinition struct {
	Tier     TrustTier `json:"tier"`
	MinScore float64   `json:"min_score"`
	Guidance string    `json:"guidance"`
}

// MetricsRenderModel is the fully processed model behind the metrics
// command output, shared by the text, CSV and JSON writers.
type MetricsRenderModel struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Components  []ComponentDefinition `json:"components"`
	Tiers       []TierDefinition      `json:"tiers"`
}

// componentDescriptions is the fixed prose behind each component.
var componentDescriptions = map[ComponentKey]string{
	ComponentStructural:      "Completeness, duplication, schema hygiene and redundancy",
	ComponentGovernanceTrust: "Inverse of sensitive-data exposure risk",
	ComponentOperational:     "Data freshness and cadence regularity",
	ComponentLogical:         "Domain business-rule conformance",
	ComponentUtility:         "Statistical readiness for modeling and BI",
	ComponentPreparation:     "Inverse of expected data preparation effort",
}

// tierGuidance is the fixed prose behind each tier.
var tierGuidance = map[TrustTier]string{
	TierDecisionReady:     "Safe for analytics, BI and model training",
	TierReviewRecommended: "Usable with a targeted human review first",
	TierRiskPresent:       "Remediate flagged issues before downstream use",
	TierNotTrustworthy:    "Do not feed into pipelines without rework",
}

// BuildMetricsRenderModel assembles the metrics model for a weight map,
// in the canonical component order.
func BuildMetricsRenderModel(weights map[ComponentKey]float64) *MetricsRenderModel {
	components := make([]ComponentDefinition, 0, len(ComponentOrder))
	for _, key := range ComponentOrder {
		components = append(components, ComponentDefinition{
			Key:         key,
			Weight:      weights[key],
			Description: componentDescriptions[key],
		})
	}
	tiers := []TierDefinition{
		{Tier: TierDecisionReady, MinScore: TierThresholdDecisionReady, Guidance: tierGuidance[TierDecisionReady]},
		{Tier: TierReviewRecommended, MinScore: TierThresholdReviewRecommended, Guidance: tierGuidance[TierReviewRecommended]},
		{Tier: TierRiskPresent, MinScore: TierThresholdRiskPresent, Guidance: tierGuidance[TierRiskPresent]},
		{Tier: TierNotTrustworthy, MinScore: 0, Guidance: tierGuidance[TierNotTrustworthy]},
	}
	return &MetricsRenderModel{
		Title:       "Trust Index Components",
		Description: "EDTI = weighted sum of six 0-1 components (higher = better)",
		Components:  components,
		Tiers:       tiers,
	}
}
