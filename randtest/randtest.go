// Package randtest implements goodness-of-fit tests for sequences that
// should be uniformly distributed on [0, 1): the chi-square test over equal
// bins and the Kolmogorov-Smirnov test.
package randtest

import (
	"fmt"
	"math"
	"sort"

	"github.com/tutils/prng"
)

// Bins is the number of equal subdivisions of [0, 1) the chi-square test uses.
const Bins = 10

// chi-square critical values for Bins-1 = 9 degrees of freedom
var chiSquareCritical = map[float64]float64{
	0.80: 12.242,
	0.90: 14.684,
	0.95: 16.919,
}

// Kolmogorov-Smirnov critical value coefficients for large samples, divided
// by sqrt(n)
var ksCoefficient = map[float64]float64{
	0.10: 1.22,
	0.05: 1.36,
	0.01: 1.63,
}

// ChiSquareLevels are the confidence levels ChiSquareCritical knows.
var ChiSquareLevels = []float64{0.80, 0.90, 0.95}

// KSAlphas are the significance levels KSCritical knows.
var KSAlphas = []float64{0.10, 0.05, 0.01}

func checkRange(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("randtest: empty sample: %w", prng.ErrDomain)
	}
	for i, v := range values {
		if !(v >= 0 && v < 1) {
			return fmt.Errorf("randtest: value %d = %v outside [0, 1): %w", i, v, prng.ErrDomain)
		}
	}
	return nil
}

// Histogram counts values into bins equal subdivisions of [0, 1).
func Histogram(values []float64, bins int) ([]int, error) {
	if bins < 1 {
		return nil, fmt.Errorf("randtest: %d bins: %w", bins, prng.ErrDomain)
	}
	if err := checkRange(values); err != nil {
		return nil, err
	}
	counts := make([]int, bins)
	for _, v := range values {
		i := int(v * float64(bins))
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts, nil
}

// ChiSquare returns sum((observed-expected)^2/expected) over bins equal
// subdivisions of [0, 1), expecting len(values)/bins values in each.
func ChiSquare(values []float64, bins int) (float64, error) {
	counts, err := Histogram(values, bins)
	if err != nil {
		return 0, err
	}
	expected := float64(len(values)) / float64(bins)
	var chi float64
	for _, observed := range counts {
		d := float64(observed) - expected
		chi += d * d / expected
	}
	return chi, nil
}

// ChiSquareCritical returns the critical value at the given confidence level
// for a test over Bins bins.
func ChiSquareCritical(level float64) (float64, error) {
	crit, ok := chiSquareCritical[level]
	if !ok {
		return 0, fmt.Errorf("randtest: unsupported chi-square level %v: %w", level, prng.ErrDomain)
	}
	return crit, nil
}

// KS holds the Kolmogorov-Smirnov statistics of a sample.
type KS struct {
	DPlus  float64
	DMinus float64
	D      float64
}

// KolmogorovSmirnov computes D+ = max(i/n - R(i)), D- = max(R(i) - (i-1)/n)
// and D = max(D+, D-) over the sorted sample R. values is not modified.
func KolmogorovSmirnov(values []float64) (KS, error) {
	if err := checkRange(values); err != nil {
		return KS{}, err
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	var ks KS
	for i, r := range sorted {
		rank := float64(i + 1)
		ks.DPlus = math.Max(ks.DPlus, rank/n-r)
		ks.DMinus = math.Max(ks.DMinus, r-(rank-1)/n)
	}
	ks.D = math.Max(ks.DPlus, ks.DMinus)
	return ks, nil
}

// KSCritical returns the critical D for a sample of n values at the given
// significance level.
func KSCritical(alpha float64, n int) (float64, error) {
	c, ok := ksCoefficient[alpha]
	if !ok {
		return 0, fmt.Errorf("randtest: unsupported Kolmogorov-Smirnov alpha %v: %w", alpha, prng.ErrDomain)
	}
	if n < 1 {
		return 0, fmt.Errorf("randtest: sample size %d: %w", n, prng.ErrDomain)
	}
	return c / math.Sqrt(float64(n)), nil
}
