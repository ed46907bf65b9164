package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/trustgate/trustgate/frame"
	"github.com/trustgate/trustgate/schema"
)

// Business-rule column matchers. These are domain conventions for
// transactional datasets; a column participates in a check when its name
// matches and its type fits the rule.
var (
	revenueLike  = regexp.MustCompile(`revenue|sales|amount`)
	profitLike   = regexp.MustCompile(`profit|net_income`)
	quantityLike = regexp.MustCompile(`qty|quantity|count`)
	idLike       = regexp.MustCompile(`id|transaction|txn|key`)
)

// LogicalEvaluator validates domain business rules: non-negative revenue
// and quantities, profit never exceeding revenue, unique identifiers.
type LogicalEvaluator struct{}

// NewLogicalEvaluator builds a logical evaluator.
func NewLogicalEvaluator() *LogicalEvaluator {
	return &LogicalEvaluator{}
}

// Evaluate runs the fixed rule battery and tallies passed checks. When no
// rule applies it returns the documented neutral default.
func (e *LogicalEvaluator) Evaluate(profile *schema.DatasetProfile) schema.LogicalResult {
	table := profile.Table()
	var violations []string
	totalChecks, passed := 0, 0

	revenueCols := matchNumericColumns(table, revenueLike)
	for _, c := range revenueCols {
		totalChecks++
		if hasNegativeValue(c) {
			violations = append(violations, fmt.Sprintf("'%s' has negative values (revenue-like)", c.Name()))
		} else {
			passed++
		}
	}

	profitCols := matchNumericColumns(table, profitLike)
	for _, rev := range revenueCols {
		for _, pr := range profitCols {
			if rev.Name() == pr.Name() {
				continue
			}
			totalChecks++
			if profitExceedsRevenue(pr, rev) {
				violations = append(violations, fmt.Sprintf("'%s' > '%s' in some rows", pr.Name(), rev.Name()))
			} else {
				passed++
			}
		}
	}

	for _, c := range matchNumericColumns(table, quantityLike) {
		totalChecks++
		if hasNegativeValue(c) {
			violations = append(violations, fmt.Sprintf("'%s' has negative values", c.Name()))
		} else {
			passed++
		}
	}

	for _, c := range table.Columns() {
		if !idLike.MatchString(strings.ToLower(c.Name())) || c.DistinctNonNull() == 0 {
			continue
		}
		if c.Kind() != frame.StringKind && c.Kind() != frame.IntKind {
			continue
		}
		totalChecks++
		if hasDuplicateValues(c) {
			violations = append(violations, fmt.Sprintf("'%s' has duplicates (expected unique)", c.Name()))
		} else {
			passed++
		}
	}

	if totalChecks == 0 {
		return schema.LogicalResult{
			LogicalIntegrityScore: 0.85,
			ViolationRate:         0,
			ViolationsSummary:     nil,
		}
	}

	violationRate := 1 - float64(passed)/float64(totalChecks)
	integrity := max(0.0, 1.0-violationRate*1.5)
	if len(violations) > schema.MaxLogicalViolations {
		violations = violations[:schema.MaxLogicalViolations]
	}

	return schema.LogicalResult{
		LogicalIntegrityScore: round4(min(1.0, integrity)),
		ViolationRate:         round4(violationRate),
		ViolationsSummary:     violations,
	}
}

func matchNumericColumns(table *frame.Table, pattern *regexp.Regexp) []*frame.Column {
	var out []*frame.Column
	for _, c := range table.Columns() {
		if c.IsNumeric() && pattern.MatchString(strings.ToLower(c.Name())) {
			out = append(out, c)
		}
	}
	return out
}

func hasNegativeValue(c *frame.Column) bool {
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.FloatAt(i); ok && v < 0 {
			return true
		}
	}
	return false
}

// profitExceedsRevenue reports whether any row has both values present
// with profit strictly greater than revenue.
func profitExceedsRevenue(profit, revenue *frame.Column) bool {
	n := min(profit.Len(), revenue.Len())
	for i := 0; i < n; i++ {
		p, okP := profit.FloatAt(i)
		r, okR := revenue.FloatAt(i)
		if okP && okR && p > r {
			return true
		}
	}
	return false
}

// hasDuplicateValues checks exact value repetition, nulls included, which
// is what an "expected unique" identifier column must not have.
func hasDuplicateValues(c *frame.Column) bool {
	seen := make(map[string]struct{}, c.Len())
	for i := 0; i < c.Len(); i++ {
		key := "\x00"
		if !c.IsNull(i) {
			key = c.ValueString(i)
		}
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}
