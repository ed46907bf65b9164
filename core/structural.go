package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trustgate/trustgate/frame"
	"github.com/trustgate/trustgate/schema"
)

// StructuralEvaluator checks schema completeness, duplication, identifier
// uniqueness and feature redundancy.
type StructuralEvaluator struct {
	thresholds schema.Thresholds
}

// NewStructuralEvaluator builds a structural evaluator with the given
// detection constants.
func NewStructuralEvaluator(th schema.Thresholds) *StructuralEvaluator {
	return &StructuralEvaluator{thresholds: th}
}

// Evaluate runs all structural checks against the profile's table.
func (e *StructuralEvaluator) Evaluate(profile *schema.DatasetProfile) schema.StructuralResult {
	table := profile.Table()
	nRows, nCols := table.NumRows(), table.NumCols()
	var flags []string
	var redundant []string
	var candidatePKs []string

	// --- Schema completeness ---
	var emptyCols []string
	for _, c := range table.Columns() {
		if c.Len() > 0 && c.NullCount() == c.Len() {
			emptyCols = append(emptyCols, c.Name())
		}
	}
	if len(emptyCols) > 0 {
		preview := emptyCols
		suffix := ""
		if len(preview) > 5 {
			preview = preview[:5]
			suffix = "..."
		}
		flags = append(flags, fmt.Sprintf("Empty columns: %d (%s%s)", len(emptyCols), strings.Join(preview, ", "), suffix))
	}

	// --- Missing value density ---
	missingRatio := 0.0
	if nRows*nCols > 0 {
		missingRatio = float64(table.TotalNulls()) / float64(nRows*nCols)
	}
	if missingRatio > 0.3 {
		flags = append(flags, fmt.Sprintf("High missing value density: %.1f%%", missingRatio*100))
	} else if missingRatio > 0.1 {
		flags = append(flags, fmt.Sprintf("Moderate missing value density: %.1f%%", missingRatio*100))
	}

	// --- Duplicate rows ---
	dupCount := table.DuplicateRowCount()
	if dupCount > 0 {
		pct := float64(dupCount) / float64(nRows)
		flags = append(flags, fmt.Sprintf("Duplicate rows: %d (%.1f%%)", dupCount, pct*100))
	}

	// --- Identifier uniqueness and constant columns ---
	for _, c := range table.Columns() {
		if nRows > 0 && c.IsFullRowUnique() {
			candidatePKs = append(candidatePKs, c.Name())
		}
		if nRows > 1 && c.DistinctNonNull() == 1 {
			redundant = append(redundant, c.Name())
			flags = append(flags, fmt.Sprintf("Constant column: %s", c.Name()))
		}
	}

	// --- Near-constant columns ---
	constant := make(map[string]struct{}, len(redundant))
	for _, name := range redundant {
		constant[name] = struct{}{}
	}
	if nRows > 10 {
		for _, c := range table.Columns() {
			if _, done := constant[c.Name()]; done {
				continue
			}
			top, count := c.TopValue()
			if float64(count)/float64(nRows) >= e.thresholds.NearConstantShare {
				redundant = append(redundant, c.Name())
				flags = append(flags, fmt.Sprintf("Near-constant column: %s (%s)", c.Name(), top))
			}
		}
	}

	// --- Correlation redundancy ---
	numeric := table.NumericColumns()
	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			r, ok := frame.Correlation(numeric[i], numeric[j])
			if !ok {
				continue
			}
			if abs(r) > e.thresholds.RedundancyCorrelation {
				redundant = append(redundant, numeric[i].Name(), numeric[j].Name())
				flags = append(flags, fmt.Sprintf("High correlation redundancy: %s ~ %s (r=%.2f)", numeric[i].Name(), numeric[j].Name(), abs(r)))
			}
		}
	}
	redundant = dedupStrings(redundant)

	// --- Type inconsistency in text columns ---
	for _, c := range table.Columns() {
		if !c.IsText() {
			continue
		}
		numLike, total := 0, 0
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			total++
			if looksNumeric(c.ValueString(i)) {
				numLike++
			}
		}
		if numLike > 0 && numLike < total {
			flags = append(flags, fmt.Sprintf("Type inconsistency in column: %s (mixed numeric/text)", c.Name()))
		}
	}

	// --- Structural integrity score ---
	score := 1.0
	switch {
	case missingRatio > 0.5:
		score -= 0.35
	case missingRatio > 0.2:
		score -= 0.2
	case missingRatio > 0.05:
		score -= 0.1
	}
	dupRatio := float64(dupCount) / float64(max(nRows, 1))
	if dupRatio > 0.1 {
		score -= 0.2
	} else if dupCount > 0 {
		score -= 0.1
	}
	if len(emptyCols) > 0 {
		score -= 0.1 * float64(min(len(emptyCols), 3))
	}
	if float64(len(redundant)) > float64(nCols)*0.3 {
		score -= 0.15
	}

	return schema.StructuralResult{
		StructuralIntegrityScore: round4(clamp01(score)),
		StructuralRiskFlags:      flags,
		RedundantFeatureList:     redundant,
		CandidatePrimaryKeys:     candidatePKs,
	}
}

// looksNumeric reports whether s parses as a number once thousands
// separators are removed.
func looksNumeric(s string) bool {
	cleaned := strings.ReplaceAll(s, ",", "")
	if cleaned == "" {
		return false
	}
	_, err := strconv.ParseFloat(cleaned, 64)
	return err == nil
}

// dedupStrings removes duplicates while preserving first-seen order.
func dedupStrings(in []string) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
