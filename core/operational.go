package core

import (
	"sort"
	"time"

	"github.com/trustgate/trustgate/frame"
	"github.com/trustgate/trustgate/schema"
)

// OperationalEvaluator measures temporal reliability: data recency and
// update-gap regularity. The clock is injected so tests can pin "now".
type OperationalEvaluator struct {
	now func() time.Time
}

// NewOperationalEvaluator builds an operational evaluator. A nil clock
// defaults to time.Now.
func NewOperationalEvaluator(clock func() time.Time) *OperationalEvaluator {
	if clock == nil {
		clock = time.Now
	}
	return &OperationalEvaluator{now: clock}
}

// Evaluate locates the first temporal column and scores recency and gaps.
// A table with no detectable temporal column returns the documented
// degenerate result, not an error.
func (e *OperationalEvaluator) Evaluate(profile *schema.DatasetProfile) schema.OperationalResult {
	ts := findTemporalValues(profile.Table())
	if len(ts) == 0 {
		return schema.OperationalResult{
			TemporalReliabilityScore: 0.5,
			OperationalRiskFlags:     []string{"No temporal column detected"},
			HasTemporalColumn:        false,
		}
	}

	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })
	var flags []string
	score := 1.0

	latest := ts[len(ts)-1]
	lagDays := e.now().Sub(latest).Seconds() / 86400
	switch {
	case lagDays > 365:
		flags = append(flags, "Data very stale: over 1 year old")
		score -= 0.4
	case lagDays > 90:
		flags = append(flags, "Data may be stale: over 90 days")
		score -= 0.2
	case lagDays > 30:
		flags = append(flags, "Moderate lag: over 30 days")
		score -= 0.1
	}

	if len(ts) >= 2 {
		diffs := make([]float64, 0, len(ts)-1)
		for i := 1; i < len(ts); i++ {
			diffs = append(diffs, ts[i].Sub(ts[i-1]).Seconds())
		}
		median := frame.Median(diffs)
		if median > 0 {
			gaps := 0
			for _, d := range diffs {
				if d > 2*median {
					gaps++
				}
			}
			if gaps > 0 {
				flags = append(flags, "Time gaps detected")
				score -= min(0.2, 0.05*float64(min(gaps, 4)))
			}
		}
	}

	lag := round2(lagDays)
	return schema.OperationalResult{
		TemporalReliabilityScore: round4(clamp01(score)),
		OperationalRiskFlags:     flags,
		HasTemporalColumn:        true,
		LatestUpdateLagDays:      &lag,
	}
}

// findTemporalValues returns the timestamps of the first temporal column,
// in table order: native timestamp columns win, then text columns with an
// ISO-date prefix.
func findTemporalValues(table *frame.Table) []time.Time {
	for _, c := range table.Columns() {
		if vals, ok := frame.TemporalValues(c); ok && len(vals) > 0 {
			return vals
		}
	}
	return nil
}
