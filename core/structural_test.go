package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trustgate/trustgate/frame"
	"github.com/trustgate/trustgate/schema"
)

func newTestProfile(table *frame.Table) *schema.DatasetProfile {
	return BuildProfile(table, schema.CSVSource)
}

func TestStructuralCleanTable(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())
	table := frame.New(
		frame.NewIntColumn("id", []int64{1, 2, 3, 4}, nil),
		frame.NewStringColumn("name", []string{"a", "b", "c", "d"}, nil),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.Equal(t, 1.0, res.StructuralIntegrityScore)
	assert.Empty(t, res.StructuralRiskFlags)
	assert.Empty(t, res.RedundantFeatureList)
	assert.ElementsMatch(t, []string{"id", "name"}, res.CandidatePrimaryKeys)
}

func TestStructuralEmptyColumns(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())
	table := frame.New(
		frame.NewIntColumn("id", []int64{1, 2}, nil),
		frame.NewStringColumn("notes", []string{"", ""}, []bool{true, true}),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.Contains(t, strings.Join(res.StructuralRiskFlags, "\n"), "Empty columns: 1 (notes)")
	assert.Less(t, res.StructuralIntegrityScore, 1.0)
}

func TestStructuralMissingDensityFlags(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())

	// Half of one of two columns missing: 25% density, "moderate" band.
	table := frame.New(
		frame.NewIntColumn("id", []int64{1, 2, 3, 4}, nil),
		frame.NewFloatColumn("v", []float64{1, 0, 0, 2}, []bool{false, true, true, false}),
	)

	res := e.Evaluate(newTestProfile(table))
	assert.Contains(t, strings.Join(res.StructuralRiskFlags, "\n"), "Moderate missing value density: 25.0%")
}

func TestStructuralDuplicateRows(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())
	table := frame.New(
		frame.NewIntColumn("a", []int64{1, 1, 2, 3}, nil),
		frame.NewStringColumn("b", []string{"x", "x", "y", "z"}, nil),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.Contains(t, strings.Join(res.StructuralRiskFlags, "\n"), "Duplicate rows: 1 (25.0%)")
	// Duplicate share 25% exceeds the 10% band, so the heavier penalty applies.
	assert.Equal(t, 0.8, res.StructuralIntegrityScore)
}

func TestStructuralConstantColumn(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())
	table := frame.New(
		frame.NewIntColumn("id", []int64{1, 2, 3}, nil),
		frame.NewStringColumn("region", []string{"us", "us", "us"}, nil),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.Contains(t, res.RedundantFeatureList, "region")
	assert.Contains(t, strings.Join(res.StructuralRiskFlags, "\n"), "Constant column: region")
}

func TestStructuralConstantColumnWithNulls(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())

	// Nulls don't add cardinality: one distinct non-null value is constant.
	table := frame.New(
		frame.NewIntColumn("id", []int64{1, 2, 3}, nil),
		frame.NewStringColumn("region", []string{"us", "us", ""}, []bool{false, false, true}),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.Contains(t, res.RedundantFeatureList, "region")
	assert.Contains(t, strings.Join(res.StructuralRiskFlags, "\n"), "Constant column: region")
	// Null-bearing columns stay out of the PK candidates.
	assert.NotContains(t, res.CandidatePrimaryKeys, "region")
}

func TestStructuralNearConstantColumn(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())

	// 19 of 20 rows share one value (95%): near-constant at the default cutoff.
	vals := make([]string, 20)
	for i := range vals {
		vals[i] = "yes"
	}
	vals[19] = "no"
	ids := make([]int64, 20)
	for i := range ids {
		ids[i] = int64(i)
	}
	table := frame.New(
		frame.NewIntColumn("id", ids, nil),
		frame.NewStringColumn("active", vals, nil),
	)

	res := e.Evaluate(newTestProfile(table))
	assert.Contains(t, res.RedundantFeatureList, "active")
	assert.Contains(t, strings.Join(res.StructuralRiskFlags, "\n"), "Near-constant column: active (yes)")
}

func TestStructuralCorrelationRedundancy(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())

	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 6, 8, 10} // perfectly correlated with a
	table := frame.New(
		frame.NewFloatColumn("amount", a, nil),
		frame.NewFloatColumn("amount_x2", b, nil),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.ElementsMatch(t, []string{"amount", "amount_x2"}, res.RedundantFeatureList)
	assert.Contains(t, strings.Join(res.StructuralRiskFlags, "\n"), "High correlation redundancy: amount ~ amount_x2 (r=1.00)")
}

func TestStructuralTypeInconsistency(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())
	table := frame.New(
		frame.NewStringColumn("code", []string{"123", "abc", "456"}, nil),
	)

	res := e.Evaluate(newTestProfile(table))
	assert.Contains(t, strings.Join(res.StructuralRiskFlags, "\n"), "Type inconsistency in column: code (mixed numeric/text)")
}

func TestStructuralScorePenalties(t *testing.T) {
	e := NewStructuralEvaluator(schema.DefaultThresholds())

	// Mostly-null column drags missing density over 50% and is empty.
	table := frame.New(
		frame.NewStringColumn("junk", []string{"", "", ""}, []bool{true, true, true}),
	)

	res := e.Evaluate(newTestProfile(table))

	// 1.0 - 0.35 (missing > 0.5) - 0.1 (one empty column)
	// - 0.2 (two duplicate null rows out of three) = 0.35
	assert.InDelta(t, 0.35, res.StructuralIntegrityScore, 1e-9)
}

func TestLooksNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"42", true},
		{"-3.5", true},
		{"1,234.56", true},
		{"abc", false},
		{"", false},
		{",", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, looksNumeric(tt.input))
		})
	}
}

func TestDedupStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupStrings([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, dedupStrings(nil))
}
