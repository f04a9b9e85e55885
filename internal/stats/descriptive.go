package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Descriptives holds the per-trait summary a student has to reproduce by hand.
type Descriptives struct {
	Mean     float64
	Median   float64
	SD       float64
	Skew     float64
	Kurtosis float64
	Min      float64
	Max      float64
}

// Describe computes the descriptive block for one trait column.
// SD uses the n-1 denominator; skewness and excess kurtosis are the
// bias-adjusted sample estimators (the convention fixed for the answer key).
func Describe(xs []float64) Descriptives {
	n := len(xs)
	if n == 0 {
		return Descriptives{}
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	d := Descriptives{
		Mean:   stat.Mean(xs, nil),
		Median: median(sorted),
		SD:     stat.StdDev(xs, nil),
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
	d.Skew = adjustedSkew(xs, d.Mean, d.SD)
	d.Kurtosis = adjustedKurtosis(xs, d.Mean, d.SD)
	return d
}

// median of an already sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// adjustedSkew is the adjusted Fisher-Pearson estimator:
// n/((n-1)(n-2)) * sum(((x-mean)/s)^3).
func adjustedSkew(xs []float64, mean, sd float64) float64 {
	n := float64(len(xs))
	if n < 3 || sd == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		z := (x - mean) / sd
		sum += z * z * z
	}
	return n / ((n - 1) * (n - 2)) * sum
}

// adjustedKurtosis is the bias-adjusted excess kurtosis:
// n(n+1)/((n-1)(n-2)(n-3)) * sum(z^4) - 3(n-1)^2/((n-2)(n-3)).
func adjustedKurtosis(xs []float64, mean, sd float64) float64 {
	n := float64(len(xs))
	if n < 4 || sd == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		z := (x - mean) / sd
		sum += math.Pow(z, 4)
	}
	return n*(n+1)/((n-1)*(n-2)*(n-3))*sum - 3*(n-1)*(n-1)/((n-2)*(n-3))
}
