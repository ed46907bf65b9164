package schema

// DefaultTrustWeights returns the weight of each component in the EDTI
// composite. The weights sum to 1.0; overrides from the config file are
// merged on top and re-checked by validation.
func DefaultTrustWeights() map[ComponentKey]float64 {
	return map[ComponentKey]float64{
		ComponentStructural:      0.22,
		ComponentGovernanceTrust: 0.20,
		ComponentOperational:     0.18,
		ComponentLogical:         0.18,
		ComponentUtility:         0.12,
		ComponentPreparation:     0.10,
	}
}

// Thresholds carries the tunable detection constants used by the
// evaluators. The correlation and VIF cutoffs are domain conventions with
// no statistical derivation, so they stay configurable rather than being
// hard-coded at their call sites.
type Thresholds struct {
	RedundancyCorrelation float64 // |r| above this marks a numeric pair redundant
	VIF                   float64 // variance inflation factor above this marks a column collinear
	NearConstantShare     float64 // share of rows one value must cover to be near-constant
	PatternSampleLimit    int     // max non-null values scanned per column for PII patterns
	AnomalyContamination  float64 // nominal outlier share assumed by the anomaly scorer
}

// DefaultThresholds returns the stock detection constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RedundancyCorrelation: 0.95,
		VIF:                   10.0,
		NearConstantShare:     0.95,
		PatternSampleLimit:    1000,
		AnomalyContamination:  0.10,
	}
}
