// Package bbs implements the Blum Blum Shub quadratic residue generator.
//
// The state x is replaced by x*x mod n on every step, where n = p*q is the
// product of two primes. For the generator to be cryptographically sound p
// and q must be distinct primes congruent to 3 mod 4 and the seed must be
// coprime to n. That precondition is documented, not enforced: New accepts
// any p, q > 0 and any seed in [0, n). Use Params.CheckSecure to test it.
//
// A Generator is not safe for concurrent use; wrap it in prng.SyncGenerator
// when it is shared.
package bbs

import (
	"fmt"

	"github.com/tutils/prng"
	"github.com/tutils/prng/modmath"
)

var _ prng.Generator = (*Generator)(nil)

// Generator holds the factors, the modulus derived from them and the last
// residue. The modulus is only ever computed together with p and q.
type Generator struct {
	p, q, n uint64
	x       uint64
}

// New returns a generator for the primes p and q starting from seed.
func New(p, q, seed uint64) (*Generator, error) {
	return NewWithParams(Params{P: p, Q: q, Seed: seed})
}

// NewWithParams validates params and returns a generator for them.
func NewWithParams(params Params) (*Generator, error) {
	g := &Generator{}
	if err := g.Reconfigure(params.P, params.Q, params.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reconfigure replaces p, q and the state at once. On error g is unchanged.
func (g *Generator) Reconfigure(p, q, seed uint64) error {
	params := Params{P: p, Q: q, Seed: seed}
	n, err := params.modulus()
	if err != nil {
		return err
	}
	g.p, g.q, g.n, g.x = p, q, n, seed
	return nil
}

// WithP returns a new generator with p replaced and the modulus recomputed.
// The current state carries over and must still be below the new modulus.
func (g *Generator) WithP(p uint64) (*Generator, error) {
	return New(p, g.q, g.x)
}

// WithQ returns a new generator with q replaced and the modulus recomputed.
func (g *Generator) WithQ(q uint64) (*Generator, error) {
	return New(g.p, q, g.x)
}

// WithSeed returns a new generator over the same primes restarted at seed.
func (g *Generator) WithSeed(seed uint64) (*Generator, error) {
	return New(g.p, g.q, seed)
}

// Next advances the state to x*x mod n and returns it.
func (g *Generator) Next() uint64 {
	g.x = modmath.SquareMod(g.x, g.n)
	return g.x
}

// NextNormalized advances the state and returns it divided by n.
func (g *Generator) NextNormalized() float64 {
	return prng.Normalize(g.Next(), g.n)
}

// NextBit advances the state and returns its least significant bit.
func (g *Generator) NextBit() uint8 {
	return uint8(g.Next() & 1)
}

// Modulus implements prng.Generator.
func (g *Generator) Modulus() uint64 { return g.n }

// P returns the first prime factor.
func (g *Generator) P() uint64 { return g.p }

// Q returns the second prime factor.
func (g *Generator) Q() uint64 { return g.q }

// State returns the last residue, or the seed before the first step.
func (g *Generator) State() uint64 { return g.x }

// Params returns the factors and the current state as parameters that
// resume this generator.
func (g *Generator) Params() Params {
	return Params{P: g.p, Q: g.q, Seed: g.x}
}

func (g *Generator) String() string {
	return fmt.Sprintf("bbs(p=%d, q=%d, n=%d)", g.p, g.q, g.n)
}
