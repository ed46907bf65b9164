// Package schema has models, enumerations and tunable constants for all parts of trustgate.
package schema

// StructuralResult holds schema and integrity findings for a dataset.
// It covers completeness, duplication, identifier uniqueness and
// feature redundancy.
type StructuralResult struct {
	StructuralIntegrityScore float64  `json:"structural_integrity_score"` // 0-1, higher is better
	StructuralRiskFlags      []string `json:"structural_risk_flags"`
	RedundantFeatureList     []string `json:"redundant_feature_list"` // deduplicated, detection order
	CandidatePrimaryKeys     []string `json:"candidate_primary_keys"`
}

// GovernanceResult holds sensitivity findings. GovernanceRiskScore is a
// risk value: higher means more exposure, trust components invert it.
type GovernanceResult struct {
	GovernanceRiskScore       float64             `json:"governance_risk_score"` // 0-1, higher is worse
	SensitivityClassification SensitivityLevel    `json:"sensitivity_classification"`
	SensitiveColumnMap        map[string][]string `json:"sensitive_column_map"` // column -> matched pattern labels
	RiskFlags                 []string            `json:"risk_flags"`           // capped at MaxGovernanceFlags
}

// OperationalResult holds temporal reliability findings.
// LatestUpdateLagDays is nil when no temporal column was detected.
type OperationalResult struct {
	TemporalReliabilityScore float64  `json:"temporal_reliability_score"` // 0-1, higher is better
	OperationalRiskFlags     []string `json:"operational_risk_flags"`
	HasTemporalColumn        bool     `json:"has_temporal_column"`
	LatestUpdateLagDays      *float64 `json:"latest_update_lag_days,omitempty"`
}

// LogicalResult holds business-rule conformance findings.
type LogicalResult struct {
	LogicalIntegrityScore float64  `json:"logical_integrity_score"` // 0-1, higher is better
	ViolationRate         float64  `json:"violation_rate"`          // 0-1, fraction of failed checks
	ViolationsSummary     []string `json:"violations_summary"`      // capped at MaxLogicalViolations
}

// AnalyticalResult holds modeling-readiness findings.
// AnomalyDensity is nil when the outlier scorer is unavailable or failed to fit.
type AnalyticalResult struct {
	AnalyticsUtilityScore      float64  `json:"analytics_utility_score"`      // 0-1, higher is better
	PreparationComplexityScore float64  `json:"preparation_complexity_score"` // 0-1, higher means more effort
	LowVarianceColumns         []string `json:"low_variance_columns"`
	HighSkewColumns            []string `json:"high_skew_columns"`
	HighVIFColumns             []string `json:"high_vif_columns"`
	AnomalyDensity             *float64 `json:"anomaly_density,omitempty"`
}

// TrustResult is the terminal artifact: the Enterprise Data Trust Index,
// its tier, and the fixed six-entry component and heatmap breakdowns.
// ComponentScores and RiskHeatmap always carry exactly the keys in
// ComponentOrder and RiskCategoryOrder; render them in that order.
type TrustResult struct {
	EDTIScore       float64                     `json:"edti_score"` // 0-1
	TrustTier       TrustTier                   `json:"trust_tier"`
	ComponentScores map[ComponentKey]float64    `json:"component_scores"`
	RiskHeatmap     map[RiskCategoryKey]float64 `json:"risk_heatmap"` // higher = more risk
}

// EvaluationBundle holds every layer result for a single dataset evaluation.
// It is read-only once assembled by the engine.
type EvaluationBundle struct {
	Structural  StructuralResult  `json:"structural"`
	Governance  GovernanceResult  `json:"governance"`
	Operational OperationalResult `json:"operational"`
	Logical     LogicalResult     `json:"logical"`
	Analytical  AnalyticalResult  `json:"analytical"`
	Trust       *TrustResult      `json:"trust,omitempty"`
}
