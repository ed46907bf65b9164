// Package core has the trust evaluation pipeline: the profile builder,
// the five layer evaluators, the outlier scorer and the trust aggregator.
// Every evaluator is a pure function of a shared read-only profile and is
// total: degenerate inputs produce documented defaults, never errors.
package core

import "math"

// clamp01 bounds v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// round4 rounds to four decimals, the precision all stored scores carry.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// round2 rounds to two decimals, used for the day-lag measurement.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
