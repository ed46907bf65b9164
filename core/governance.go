package core

import (
	"fmt"
	"strings"

	"github.com/trustgate/trustgate/frame"
	"github.com/trustgate/trustgate/schema"
)

// GovernanceEvaluator classifies PII and sensitive-attribute exposure.
type GovernanceEvaluator struct {
	patterns   PatternSet
	thresholds schema.Thresholds
}

// NewGovernanceEvaluator builds a governance evaluator scanning with the
// given pattern tables.
func NewGovernanceEvaluator(patterns PatternSet, th schema.Thresholds) *GovernanceEvaluator {
	return &GovernanceEvaluator{patterns: patterns, thresholds: th}
}

// Evaluate scans every column for sensitive names and PII value patterns
// and derives the governance risk score and sensitivity classification.
func (e *GovernanceEvaluator) Evaluate(profile *schema.DatasetProfile) schema.GovernanceResult {
	table := profile.Table()
	nRows, nCols := table.NumRows(), table.NumCols()
	sensitiveMap := make(map[string][]string)
	var sensitiveOrder []string
	var riskFlags []string
	maxRisk := 0.0

	for _, c := range table.Columns() {
		var reasons []string
		reasons = append(reasons, e.columnNameReasons(c.Name())...)
		if c.IsText() {
			reasons = append(reasons, e.valuePatternReasons(c)...)
		}
		if len(reasons) == 0 {
			continue
		}
		reasons = dedupStrings(reasons)
		sensitiveMap[c.Name()] = reasons
		sensitiveOrder = append(sensitiveOrder, c.Name())
		maxRisk = max(maxRisk, reasonWeight(reasons))
	}

	// Absence of a full-row unique identifier is a re-identification risk
	// on its own, independent of any sensitive column.
	if nRows > 0 && nCols > 0 {
		hasUnique := false
		for _, c := range table.Columns() {
			if c.IsFullRowUnique() {
				hasUnique = true
				break
			}
		}
		if !hasUnique {
			riskFlags = append(riskFlags, "No obvious unique identifier; re-identification risk")
		}
	}

	numSensitive := len(sensitiveMap)
	risk := 0.1 // baseline low risk
	if numSensitive > 0 {
		risk = min(1.0, 0.3+0.2*float64(numSensitive)+0.5*maxRisk)
	}

	var level schema.SensitivityLevel
	switch {
	case maxRisk >= 0.9 || numSensitive >= 5:
		level = schema.SensitivityHigh
	case maxRisk >= 0.5 || numSensitive >= 2:
		level = schema.SensitivityModerate
	default:
		level = schema.SensitivityLow
	}

	for _, col := range sensitiveOrder {
		riskFlags = append(riskFlags, fmt.Sprintf("Sensitive column '%s': %s", col, strings.Join(sensitiveMap[col], ", ")))
	}
	if len(riskFlags) > schema.MaxGovernanceFlags {
		riskFlags = riskFlags[:schema.MaxGovernanceFlags]
	}

	return schema.GovernanceResult{
		GovernanceRiskScore:       round4(risk),
		SensitivityClassification: level,
		SensitiveColumnMap:        sensitiveMap,
		RiskFlags:                 riskFlags,
	}
}

func (e *GovernanceEvaluator) columnNameReasons(name string) []string {
	lower := strings.ToLower(name)
	var hits []string
	for _, term := range e.patterns.NameTerms {
		if term.MatchString(lower) {
			hits = append(hits, "name:"+term.String())
		}
	}
	return hits
}

// valuePatternReasons scans a bounded sample of non-null values, which
// caps the cost of the regex pass on large tables.
func (e *GovernanceEvaluator) valuePatternReasons(c *frame.Column) []string {
	limit := e.thresholds.PatternSampleLimit
	sample := make([]string, 0, min(limit, c.Len()))
	for i := 0; i < c.Len() && len(sample) < limit; i++ {
		if !c.IsNull(i) {
			sample = append(sample, c.ValueString(i))
		}
	}
	var found []string
	for _, p := range e.patterns.PII {
		for _, v := range sample {
			if p.Pattern.MatchString(v) {
				found = append(found, p.Label)
				break
			}
		}
	}
	return found
}

// reasonWeight maps a column's reason set to its worst-case risk weight.
// Credential-style hits dominate, then identity/financial, then contact.
func reasonWeight(reasons []string) float64 {
	weight := 0.0
	for _, r := range reasons {
		switch {
		case strings.Contains(r, "password") || strings.Contains(r, "secret") || strings.Contains(r, "token"):
			weight = max(weight, 1.0)
		case strings.Contains(r, "ssn") || strings.Contains(r, "credit_card") || strings.Contains(r, "salary"):
			weight = max(weight, 0.9)
		case strings.Contains(r, "email") || strings.Contains(r, "phone"):
			weight = max(weight, 0.7)
		}
	}
	return weight
}
