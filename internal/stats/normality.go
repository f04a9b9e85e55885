package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalityResult is the two-value outcome of a normality diagnostic.
// Callers get the same shape from both the Lilliefors path and the
// plain KS fallback.
type NormalityResult struct {
	D float64
	P float64
}

var errDegenerateSample = errors.New("stats: sample too small or zero variance")

// lilliefors is swappable (tests force the fallback path by replacing it).
var lilliefors = lillieforsTest

// Normality runs the Lilliefors-corrected KS test against a normal
// distribution with estimated parameters. If that path cannot run, it falls
// back silently to a one-sample KS test on the standardized values against
// N(0,1). Degraded, not an error.
func Normality(xs []float64) NormalityResult {
	res, err := lilliefors(xs)
	if err != nil {
		return ksFallback(xs)
	}
	return res
}

// lillieforsTest computes the KS statistic against a normal distribution
// fitted to the sample and the Lilliefors p-value via the Dallal-Wilkinson
// approximation, with the Stephens polynomial correction for p > 0.1.
func lillieforsTest(xs []float64) (NormalityResult, error) {
	n := len(xs)
	if n < 5 {
		return NormalityResult{}, errDegenerateSample
	}
	mean := stat.Mean(xs, nil)
	sd := stat.StdDev(xs, nil)
	if sd == 0 {
		return NormalityResult{}, errDegenerateSample
	}

	fitted := distuv.Normal{Mu: mean, Sigma: sd}
	d := ksStatistic(xs, fitted.CDF)

	nf := float64(n)
	dd, nd := d, nf
	if n > 100 {
		dd = d * math.Pow(nf/100, 0.49)
		nd = 100
	}
	p := math.Exp(-7.01256*dd*dd*(nd+2.78019) +
		2.99587*dd*math.Sqrt(nd+2.78019) -
		0.122119 + 0.974598/math.Sqrt(nd) + 1.67997/nd)

	if p > 0.1 {
		kk := (math.Sqrt(nf) - 0.01 + 0.85/math.Sqrt(nf)) * d
		switch {
		case kk <= 0.302:
			p = 1
		case kk <= 0.5:
			p = 2.76773 - 19.828315*kk + 80.709644*kk*kk - 138.55152*kk*kk*kk + 81.218052*kk*kk*kk*kk
		case kk <= 0.9:
			p = -4.901232 + 40.662806*kk - 97.490286*kk*kk + 94.029866*kk*kk*kk - 32.355711*kk*kk*kk*kk
		case kk <= 1.31:
			p = 6.198765 - 19.558097*kk + 23.186922*kk*kk - 12.234627*kk*kk*kk + 2.423045*kk*kk*kk*kk
		default:
			p = 0
		}
	}
	return NormalityResult{D: d, P: clampUnit(p)}, nil
}

// ksFallback standardizes the sample (a zero standard deviation counts as 1)
// and runs a one-sample KS test against the standard normal with the
// asymptotic Kolmogorov p-value.
func ksFallback(xs []float64) NormalityResult {
	mean := stat.Mean(xs, nil)
	sd := stat.StdDev(xs, nil)
	if sd == 0 || math.IsNaN(sd) {
		sd = 1
	}
	z := make([]float64, len(xs))
	for i, x := range xs {
		z[i] = (x - mean) / sd
	}
	d := ksStatistic(z, distuv.UnitNormal.CDF)
	return NormalityResult{D: d, P: kolmogorovP(math.Sqrt(float64(len(xs))) * d)}
}

// ksStatistic is the two-sided Kolmogorov-Smirnov distance between the
// empirical CDF of xs and the given continuous CDF.
func ksStatistic(xs []float64, cdf func(float64) float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := float64(len(sorted))
	var d float64
	for i, x := range sorted {
		f := cdf(x)
		if dp := float64(i+1)/n - f; dp > d {
			d = dp
		}
		if dm := f - float64(i)/n; dm > d {
			d = dm
		}
	}
	return d
}

// kolmogorovP is the survival function of the Kolmogorov distribution,
// Q(x) = 2 * sum_{k>=1} (-1)^(k-1) exp(-2 k^2 x^2).
func kolmogorovP(x float64) float64 {
	if x <= 0 {
		return 1
	}
	var sum float64
	for k := 1; k <= 100; k++ {
		term := math.Exp(-2 * float64(k*k) * x * x)
		if k%2 == 1 {
			sum += term
		} else {
			sum -= term
		}
		if term < 1e-16 {
			break
		}
	}
	return clampUnit(2 * sum)
}

func clampUnit(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
