package randtest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tutils/prng"
	"github.com/tutils/prng/lcg"
)

func uniform(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = (float64(i) + 0.5) / float64(n)
	}
	return values
}

func TestChiSquare(t *testing.T) {
	chi, err := ChiSquare(uniform(100), Bins)
	require.NoError(t, err)
	require.InDelta(t, 0, chi, 1e-9)

	skewed := make([]float64, 100)
	for i := range skewed {
		skewed[i] = 0.05
	}
	chi, err = ChiSquare(skewed, Bins)
	require.NoError(t, err)
	require.InDelta(t, 900, chi, 1e-9)
}

func TestChiSquareFullPeriodLCG(t *testing.T) {
	values, err := lcg.Generate(0, 1000, 21, 7, 1000)
	require.NoError(t, err)

	counts, err := Histogram(values, Bins)
	require.NoError(t, err)
	for _, c := range counts {
		require.Equal(t, 100, c)
	}
	chi, err := ChiSquare(values, Bins)
	require.NoError(t, err)
	require.InDelta(t, 0, chi, 1e-9)
}

func TestKolmogorovSmirnov(t *testing.T) {
	ks, err := KolmogorovSmirnov(uniform(100))
	require.NoError(t, err)
	require.InDelta(t, 0.005, ks.DPlus, 1e-12)
	require.InDelta(t, 0.005, ks.DMinus, 1e-12)
	require.InDelta(t, 0.005, ks.D, 1e-12)

	values := []float64{0.9, 0.05, 0.05, 0.05}
	ks, err = KolmogorovSmirnov(values)
	require.NoError(t, err)
	require.InDelta(t, 0.70, ks.DPlus, 1e-12)
	require.InDelta(t, 0.15, ks.DMinus, 1e-12)
	require.InDelta(t, 0.70, ks.D, 1e-12)
	require.Equal(t, 0.9, values[0], "input not sorted in place")
}

func TestCritical(t *testing.T) {
	crit, err := ChiSquareCritical(0.95)
	require.NoError(t, err)
	require.Equal(t, 16.919, crit)

	_, err = ChiSquareCritical(0.5)
	require.True(t, errors.Is(err, prng.ErrDomain))

	d, err := KSCritical(0.05, 100)
	require.NoError(t, err)
	require.InDelta(t, 0.136, d, 1e-12)

	_, err = KSCritical(0.2, 100)
	require.True(t, errors.Is(err, prng.ErrDomain))
	_, err = KSCritical(0.05, 0)
	require.True(t, errors.Is(err, prng.ErrDomain))
}

func TestDomain(t *testing.T) {
	_, err := ChiSquare(nil, Bins)
	require.True(t, errors.Is(err, prng.ErrDomain))
	_, err = ChiSquare([]float64{0.5, 1}, Bins)
	require.True(t, errors.Is(err, prng.ErrDomain))
	_, err = Histogram([]float64{0.5}, 0)
	require.True(t, errors.Is(err, prng.ErrDomain))
	_, err = KolmogorovSmirnov([]float64{-0.1})
	require.True(t, errors.Is(err, prng.ErrDomain))
}

func TestRun(t *testing.T) {
	values, err := lcg.Generate(0, 1000, 21, 7, 1000)
	require.NoError(t, err)

	r, err := Run(values, 100)
	require.NoError(t, err)
	require.Equal(t, 1000, r.Samples)
	require.Equal(t, 100, r.KSSamples)
	require.Len(t, r.ChiVerdicts, 3)
	require.Len(t, r.KSVerdicts, 3)
	for _, v := range r.ChiVerdicts {
		require.False(t, v.Reject)
	}

	r, err = Run(values, 0)
	require.NoError(t, err)
	require.Equal(t, 1000, r.KSSamples)
	for _, v := range r.KSVerdicts {
		require.False(t, v.Reject, "%+v", v)
	}
}
