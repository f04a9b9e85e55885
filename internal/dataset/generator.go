package dataset

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// DefaultN is the number of questionnaire records generated per student.
const DefaultN = 100

const (
	minScore = 5
	maxScore = 20
	traitSD  = 3.5
)

// Population means per trait, Traits order.
var traitMeans = []float64{12, 12, 12, 13, 14}

// Fixed correlation structure between the five traits. Scaled by traitSD^2
// into the covariance matrix used for sampling.
var traitCorr = [5][5]float64{
	{1.0, -0.6, 0.5, 0.3, 0.1},
	{-0.6, 1.0, -0.4, -0.1, -0.2},
	{0.5, -0.4, 1.0, 0.2, 0.2},
	{0.3, -0.1, 0.2, 1.0, 0.3},
	{0.1, -0.2, 0.2, 0.3, 1.0},
}

var ErrBadCovariance = errors.New("dataset: covariance matrix is not positive definite")

// SeedFor maps an identifier to the 32-bit seed driving its generator.
// The full MD5 digest reduced mod 2^32 is the big-endian tail of the digest,
// so the same identifier always lands on the same seed, on every run and
// every machine.
func SeedFor(identifier string) uint32 {
	digest := md5.Sum([]byte(identifier))
	return binary.BigEndian.Uint32(digest[12:16])
}

// Generate derives a seed from the identifier and draws n records from the
// fixed multivariate normal model. The RNG is scoped to this call, so
// concurrent requests never disturb each other's draw sequences. n <= 0
// falls back to DefaultN.
func Generate(identifier string, n int) (Dataset, error) {
	if n <= 0 {
		n = DefaultN
	}

	cov := mat.NewSymDense(len(Traits), nil)
	for i := 0; i < len(Traits); i++ {
		for j := i; j < len(Traits); j++ {
			cov.SetSym(i, j, traitCorr[i][j]*traitSD*traitSD)
		}
	}

	src := rand.NewSource(uint64(SeedFor(identifier)))
	normal, ok := distmv.NewNormal(traitMeans, cov, src)
	if !ok {
		return nil, ErrBadCovariance
	}

	ds := make(Dataset, n)
	x := make([]float64, len(Traits))
	for i := range ds {
		normal.Rand(x)
		ds[i] = Record{
			Extraversion:      clipScore(x[0]),
			Neuroticism:       clipScore(x[1]),
			Openness:          clipScore(x[2]),
			Agreeableness:     clipScore(x[3]),
			Conscientiousness: clipScore(x[4]),
		}
	}
	return ds, nil
}

// clipScore rounds half-to-even and clamps into the questionnaire range.
func clipScore(v float64) int {
	s := int(math.RoundToEven(v))
	if s < minScore {
		return minScore
	}
	if s > maxScore {
		return maxScore
	}
	return s
}
