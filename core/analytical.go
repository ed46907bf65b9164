package core

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/trustgate/trustgate/frame"
	"github.com/trustgate/trustgate/schema"
)

// AnalyticalEvaluator measures modeling readiness: variance sufficiency,
// skewness, categorical diversity, multicollinearity, missing-value burden
// and outlier density.
type AnalyticalEvaluator struct {
	thresholds schema.Thresholds
	scorer     OutlierScorer
}

// NewAnalyticalEvaluator builds an analytical evaluator. A nil scorer
// disables anomaly-density detection.
func NewAnalyticalEvaluator(thresholds schema.Thresholds, scorer OutlierScorer) *AnalyticalEvaluator {
	if scorer == nil {
		scorer = NoopScorer{}
	}
	return &AnalyticalEvaluator{thresholds: thresholds, scorer: scorer}
}

func (e *AnalyticalEvaluator) Evaluate(profile *schema.DatasetProfile) schema.AnalyticalResult {
	table := profile.Table()
	numeric := table.NumericColumns()
	if len(numeric) == 0 {
		return schema.AnalyticalResult{
			AnalyticsUtilityScore:      0.5,
			PreparationComplexityScore: 0.5,
			LowVarianceColumns:         []string{},
			HighSkewColumns:            []string{},
			HighVIFColumns:             []string{},
			AnomalyDensity:             nil,
		}
	}

	utility := 1.0
	prep := 0.0

	// --- Variance sufficiency ---
	lowVar := []string{}
	lowVarSet := make(map[string]bool)
	for _, c := range numeric {
		vals := c.Float64s()
		if len(vals) < 2 {
			continue
		}
		mean, std := frame.MeanStdDev(vals)
		maxAbs := 0.0
		for _, v := range vals {
			maxAbs = max(maxAbs, math.Abs(v))
		}
		if std == 0 || (std < 1e-10 && maxAbs > 1e-10) || (std < mean*0.01 && mean != 0) {
			lowVar = append(lowVar, c.Name())
			lowVarSet[c.Name()] = true
		}
	}
	if len(lowVar) > 0 {
		utility -= 0.1 * float64(min(len(lowVar), 5))
		prep += 0.1 * float64(len(lowVar))
	}

	// --- Skewness ---
	highSkew := []string{}
	for _, c := range numeric {
		if lowVarSet[c.Name()] {
			continue
		}
		if math.Abs(frame.Skewness(c.Float64s())) > 2 {
			highSkew = append(highSkew, c.Name())
		}
	}
	if len(highSkew) > 0 {
		utility -= 0.05 * float64(min(len(highSkew), 4))
		prep += 0.05 * float64(len(highSkew))
	}

	// --- Categorical diversity ---
	for _, c := range table.Columns() {
		if !c.IsText() {
			continue
		}
		if ratio, ok := frame.NormalizedEntropy(c.Frequencies()); ok && ratio < 0.1 {
			prep += 0.05
		}
	}

	// --- Multicollinearity ---
	highVIF := []string{}
	for col, v := range e.vifScores(numeric) {
		if v > e.thresholds.VIF {
			highVIF = append(highVIF, col)
		}
	}
	if len(highVIF) > 0 {
		utility -= 0.1 * float64(min(len(highVIF), 3))
		prep += 0.1 * float64(len(highVIF))
	}

	// --- Missing burden ---
	cells := table.NumRows() * table.NumCols()
	if cells > 0 {
		prep += 0.5 * float64(table.TotalNulls()) / float64(cells)
	}

	// --- Anomaly density ---
	var anomaly *float64
	if table.NumRows() > 10 {
		if density, ok := e.scorer.Density(numericMatrix(numeric, table.NumRows())); ok {
			rounded := round4(density)
			anomaly = &rounded
		}
	}

	return schema.AnalyticalResult{
		AnalyticsUtilityScore:      round4(clamp01(utility)),
		PreparationComplexityScore: round4(min(1.0, prep)),
		LowVarianceColumns:         lowVar,
		HighSkewColumns:            highSkew,
		HighVIFColumns:             highVIF,
		AnomalyDensity:             anomaly,
	}
}

// vifScores computes the variance inflation factor of each numeric column
// against the others, using complete-case rows and an intercept term.
// Columns whose regression is degenerate are silently skipped, matching
// how a failed fit is treated elsewhere in the rule battery.
func (e *AnalyticalEvaluator) vifScores(numeric []*frame.Column) map[string]float64 {
	var cols []*frame.Column
	for _, c := range numeric {
		if c.NonNullCount() > 0 {
			cols = append(cols, c)
		}
	}
	if len(cols) < 2 {
		return nil
	}

	vifs := make(map[string]float64)
	for i, target := range cols {
		var predictors []*frame.Column
		for j, c := range cols {
			if j == i {
				continue
			}
			_, std := frame.MeanStdDev(c.Float64s())
			if std > 0 {
				predictors = append(predictors, c)
			}
		}
		if len(predictors) == 0 {
			continue
		}
		if r2, ok := rSquared(target, predictors); ok {
			if r2 < 1 {
				vifs[target.Name()] = 1 / (1 - r2)
			} else {
				vifs[target.Name()] = math.Inf(1)
			}
		}
	}
	return vifs
}

// rSquared fits target ~ predictors by ordinary least squares over rows
// where every participating value is present.
func rSquared(target *frame.Column, predictors []*frame.Column) (float64, bool) {
	var rows []int
	for i := 0; i < target.Len(); i++ {
		if _, ok := target.FloatAt(i); !ok {
			continue
		}
		complete := true
		for _, p := range predictors {
			if _, ok := p.FloatAt(i); !ok {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, i)
		}
	}
	if len(rows) <= len(predictors)+1 {
		return 0, false
	}

	n, k := len(rows), len(predictors)+1
	x := mat.NewDense(n, k, nil)
	y := mat.NewVecDense(n, nil)
	for r, idx := range rows {
		x.Set(r, 0, 1)
		for j, p := range predictors {
			v, _ := p.FloatAt(idx)
			x.Set(r, j+1, v)
		}
		v, _ := target.FloatAt(idx)
		y.SetVec(r, v)
	}

	var qr mat.QR
	qr.Factorize(x)
	beta := mat.NewVecDense(k, nil)
	if err := qr.SolveVecTo(beta, false, y); err != nil {
		return 0, false
	}

	var fitted mat.VecDense
	fitted.MulVec(x, beta)
	mean := mat.Sum(y) / float64(n)
	var ssRes, ssTot float64
	for r := 0; r < n; r++ {
		resid := y.AtVec(r) - fitted.AtVec(r)
		ssRes += resid * resid
		dev := y.AtVec(r) - mean
		ssTot += dev * dev
	}
	if ssTot == 0 {
		return 0, false
	}
	return 1 - ssRes/ssTot, true
}

// numericMatrix lays out numeric columns row-major with NaN for nulls.
func numericMatrix(numeric []*frame.Column, nRows int) [][]float64 {
	matrix := make([][]float64, nRows)
	for i := 0; i < nRows; i++ {
		row := make([]float64, len(numeric))
		for j, c := range numeric {
			if v, ok := c.FloatAt(i); ok {
				row[j] = v
			} else {
				row[j] = math.NaN()
			}
		}
		matrix[i] = row
	}
	return matrix
}
