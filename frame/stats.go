package frame

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Correlation computes the Pearson correlation of two numeric columns over
// rows where both values are present. It reports ok=false when fewer than
// two complete pairs exist or either side has zero variance.
func Correlation(a, b *Column) (float64, bool) {
	if !a.IsNumeric() || !b.IsNumeric() || a.Len() != b.Len() {
		return 0, false
	}
	var xs, ys []float64
	for i := 0; i < a.Len(); i++ {
		x, okX := a.FloatAt(i)
		y, okY := b.FloatAt(i)
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	if len(xs) < 2 {
		return 0, false
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, false
	}
	return r, true
}

// MeanStdDev returns the mean and sample (n-1) standard deviation.
// The standard deviation is 0 for fewer than two values.
func MeanStdDev(vals []float64) (mean, std float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	if len(vals) == 1 {
		return vals[0], 0
	}
	return stat.MeanStdDev(vals, nil)
}

// Skewness computes the population Fisher-Pearson skewness g1 = m3/m2^1.5.
// It returns 0 for fewer than two values or zero variance.
func Skewness(vals []float64) float64 {
	n := float64(len(vals))
	if n < 2 {
		return 0
	}
	mean := stat.Mean(vals, nil)
	var m2, m3 float64
	for _, v := range vals {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return 0
	}
	return m3 / math.Pow(m2, 1.5)
}

// NormalizedEntropy returns the Shannon entropy of a frequency
// distribution divided by the maximum entropy for its cardinality.
// It reports ok=false for cardinality below two.
func NormalizedEntropy(freqs []float64) (float64, bool) {
	if len(freqs) < 2 {
		return 0, false
	}
	var ent float64
	for _, p := range freqs {
		if p > 0 {
			ent -= p * math.Log2(p)
		}
	}
	maxEnt := math.Log2(float64(len(freqs)))
	if maxEnt <= 0 {
		return 0, false
	}
	return ent / maxEnt, true
}

// Median returns the median of vals without mutating the input.
// It returns 0 for an empty slice.
func Median(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, vals)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Quantile returns the q-quantile (0..1) of vals using linear
// interpolation, without mutating the input.
func Quantile(vals []float64, q float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, vals)
	sort.Float64s(sorted)
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
