// Package lcg implements the linear congruential method
//
//	x[0] = seed
//	x[i] = (a*x[i-1] + c) mod m
//
// with every value normalized into [0, 1) by dividing by m. The product
// a*x[i-1] is reduced through a 128-bit intermediate so any 64-bit parameters
// are safe.
package lcg

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/tutils/prng"
	"github.com/tutils/prng/modmath"
)

// ErrPeriodLimit is returned by Period when no cycle closes within the limit.
var ErrPeriodLimit = errors.New("lcg: period exceeds search limit")

// Params are the parameters of a linear congruential generator.
type Params struct {
	Seed       uint64 `mapstructure:"seed"`
	Modulus    uint64 `mapstructure:"modulus"`
	Multiplier uint64 `mapstructure:"multiplier"`
	Increment  uint64 `mapstructure:"increment"`
}

// Validate reports every parameter outside the generator's domain.
func (p Params) Validate() error {
	var errs error
	if p.Modulus == 0 {
		errs = multierror.Append(errs, fmt.Errorf("lcg: modulus must be positive: %w", prng.ErrDomain))
	} else if p.Seed >= p.Modulus {
		errs = multierror.Append(errs, fmt.Errorf("lcg: seed %d not below modulus %d: %w", p.Seed, p.Modulus, prng.ErrDomain))
	}
	return errs
}

func (p Params) step(x uint64) uint64 {
	return modmath.AddMod(modmath.MulMod(x, p.Multiplier, p.Modulus), p.Increment, p.Modulus)
}

var _ prng.Generator = (*Generator)(nil)

// Generator walks the integer sequence of an LCG. The first call to Next
// returns the seed itself.
type Generator struct {
	params Params
	x      uint64
}

// New validates p and returns a generator positioned at the seed.
func New(p Params) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: p, x: p.Seed}, nil
}

// Next implements prng.Generator.
func (g *Generator) Next() uint64 {
	x := g.x
	g.x = g.params.step(x)
	return x
}

// Modulus implements prng.Generator.
func (g *Generator) Modulus() uint64 {
	return g.params.Modulus
}

// Params returns the parameters g was built from.
func (g *Generator) Params() Params {
	return g.params
}

// Sequence returns the first count integers of the sequence.
func Sequence(p Params, count int) ([]uint64, error) {
	if count < 0 {
		return nil, fmt.Errorf("lcg: negative count %d: %w", count, prng.ErrDomain)
	}
	g, err := New(p)
	if err != nil {
		return nil, err
	}
	seq := make([]uint64, count)
	for i := range seq {
		seq[i] = g.Next()
	}
	return seq, nil
}

// Generate returns count values in [0, 1): the sequence seeded with x0 under
// modulus m, multiplier a and increment c, each divided by m.
func Generate(x0, m, a, c uint64, count int) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("lcg: negative count %d: %w", count, prng.ErrDomain)
	}
	g, err := New(Params{Seed: x0, Modulus: m, Multiplier: a, Increment: c})
	if err != nil {
		return nil, err
	}
	return prng.Take(g, count), nil
}

// Period returns the cycle length the sequence eventually enters, using
// Brent's algorithm. It gives up with ErrPeriodLimit after limit steps.
func Period(p Params, limit uint64) (uint64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	var (
		power    uint64 = 1
		lam      uint64 = 1
		steps    uint64 = 1
		tortoise        = p.Seed
		hare            = p.step(p.Seed)
	)
	for tortoise != hare {
		if steps >= limit {
			return 0, ErrPeriodLimit
		}
		if power == lam {
			tortoise = hare
			power *= 2
			lam = 0
		}
		hare = p.step(hare)
		lam++
		steps++
	}
	return lam, nil
}
