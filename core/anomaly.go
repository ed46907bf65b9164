package core

import (
	"math"

	"github.com/trustgate/trustgate/frame"
)

// OutlierScorer estimates the share of anomalous rows in a numeric matrix.
// Cells may be NaN where the source value was null; implementations decide
// how to impute. The boolean is false when no density could be computed.
type OutlierScorer interface {
	Density(matrix [][]float64) (float64, bool)
}

// QuantileScorer is a deterministic outlier detector: it imputes missing
// cells with the column median, standardizes each column, scores every row
// by its squared distance from the origin, and flags the rows whose score
// exceeds the (1 - Contamination) quantile.
type QuantileScorer struct {
	Contamination float64
}

func (s QuantileScorer) Density(matrix [][]float64) (float64, bool) {
	nRows := len(matrix)
	if nRows == 0 || len(matrix[0]) == 0 {
		return 0, false
	}
	nCols := len(matrix[0])

	cols := make([][]float64, nCols)
	for j := 0; j < nCols; j++ {
		col := make([]float64, nRows)
		var present []float64
		for i := 0; i < nRows; i++ {
			col[i] = matrix[i][j]
			if !math.IsNaN(col[i]) {
				present = append(present, col[i])
			}
		}
		if len(present) == 0 {
			for i := range col {
				col[i] = 0
			}
		} else {
			med := frame.Median(present)
			for i := range col {
				if math.IsNaN(col[i]) {
					col[i] = med
				}
			}
		}
		mean, std := frame.MeanStdDev(col)
		if std > 0 {
			for i := range col {
				col[i] = (col[i] - mean) / std
			}
		} else {
			for i := range col {
				col[i] = 0
			}
		}
		cols[j] = col
	}

	scores := make([]float64, nRows)
	for i := 0; i < nRows; i++ {
		var sum float64
		for j := 0; j < nCols; j++ {
			v := cols[j][i]
			sum += v * v
		}
		scores[i] = sum
	}

	cutoff := frame.Quantile(scores, 1-s.Contamination)
	flagged := 0
	for _, sc := range scores {
		if sc > cutoff {
			flagged++
		}
	}
	return float64(flagged) / float64(nRows), true
}

// NoopScorer disables anomaly detection; Density always reports no result.
type NoopScorer struct{}

func (NoopScorer) Density(_ [][]float64) (float64, bool) { return 0, false }
