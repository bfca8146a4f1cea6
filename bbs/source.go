package bbs

import (
	"math/rand"

	"github.com/tutils/prng/modmath"
)

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a Generator to math/rand, assembling every 64-bit output
// from the parity bits of 64 successive residues.
type Source struct {
	g *Generator
}

// NewSource returns a Source over the primes p and q seeded with seed.
func NewSource(p, q uint64, seed int64) (*Source, error) {
	g, err := New(p, q, 0)
	if err != nil {
		return nil, err
	}
	s := &Source{g: g}
	s.Seed(seed)
	return s, nil
}

// SourceNewer returns a constructor of Sources over p and q, validating the
// primes once up front.
func SourceNewer(p, q uint64) (func(int64) rand.Source, error) {
	if _, err := NewSource(p, q, 0); err != nil {
		return nil, err
	}
	return func(seed int64) rand.Source {
		s, _ := NewSource(p, q, seed)
		return s
	}, nil
}

// Seed implements rand.Source. The seed is reduced mod n and moved forward
// to the nearest residue above 1 that is coprime to n, so every seed yields
// a non-degenerate stream.
func (s *Source) Seed(seed int64) {
	n := s.g.Modulus()
	x := uint64(seed) % n
	for i := uint64(0); i < n; i++ {
		if x > 1 && modmath.GCD(x, n) == 1 {
			break
		}
		x = (x + 1) % n
	}
	s.g.x = x
}

// Uint64 implements rand.Source64.
func (s *Source) Uint64() uint64 {
	var v uint64
	for i := 0; i < 64; i++ {
		v = v<<1 | uint64(s.g.NextBit())
	}
	return v
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
