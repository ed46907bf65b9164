package schema

// CheckResult holds the outcome of the CI gate: the observed trust index
// against the configured acceptance thresholds.
type CheckResult struct {
	EDTIScore float64   `json:"edti_score"`
	TrustTier TrustTier `json:"trust_tier"`
	MinScore  float64   `json:"min_score"`
	MinTier   TrustTier `json:"min_tier,omitempty"`
	Passed    bool      `json:"passed"`
	Reasons   []string  `json:"reasons,omitempty"` // why the gate failed
}
