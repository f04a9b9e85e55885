package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CorrelationMatrix bundles the Spearman coefficients with their two-sided
// p-values. Symmetric, unit diagonal.
type CorrelationMatrix struct {
	Rho [][]float64
	P   [][]float64
}

var errTooFewRows = errors.New("stats: correlation needs more than 2 observations")

// SpearmanMatrix computes the full rank correlation matrix over the given
// columns. This is the single correlation computation behind the whole
// answer key; the method label elsewhere never changes it.
func SpearmanMatrix(cols [][]float64) (*CorrelationMatrix, error) {
	k := len(cols)
	if k == 0 || len(cols[0]) <= 2 {
		return nil, errTooFewRows
	}
	n := len(cols[0])

	ranked := make([][]float64, k)
	for i, col := range cols {
		if len(col) != n {
			return nil, errors.New("stats: ragged columns")
		}
		ranked[i] = ranks(col)
	}

	cm := &CorrelationMatrix{
		Rho: make([][]float64, k),
		P:   make([][]float64, k),
	}
	for i := 0; i < k; i++ {
		cm.Rho[i] = make([]float64, k)
		cm.P[i] = make([]float64, k)
		cm.Rho[i][i] = 1
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			r := stat.Correlation(ranked[i], ranked[j], nil)
			p := spearmanPValue(r, n)
			cm.Rho[i][j], cm.Rho[j][i] = r, r
			cm.P[i][j], cm.P[j][i] = p, p
		}
	}
	return cm, nil
}

// spearmanPValue is the two-sided p-value under the t approximation with
// n-2 degrees of freedom.
func spearmanPValue(r float64, n int) float64 {
	if math.IsNaN(r) {
		return 1
	}
	df := float64(n - 2)
	denom := 1 - r*r
	if denom <= 0 {
		return 0
	}
	t := math.Abs(r) * math.Sqrt(df/denom)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return clampUnit(2 * dist.Survival(t))
}

// ranks assigns 1-based ranks with ties replaced by their average rank.
func ranks(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	rk := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		// ranks i+1 .. j+1 share the run, average them
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			rk[idx[k]] = avg
		}
		i = j + 1
	}
	return rk
}
