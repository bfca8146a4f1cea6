// Package prng holds the pieces shared by the generators: the Generator
// contract, normalization into the unit interval and the error taxonomy.
package prng

import (
	"errors"
	"math"
	"sync"
)

var (
	// ErrDomain reports parameters outside the domain of a generator.
	ErrDomain = errors.New("domain error")
	// ErrOverflow reports an intermediate value that does not fit in 64 bits.
	ErrOverflow = errors.New("arithmetic overflow")
)

// Generator produces raw residues in [0, Modulus()).
type Generator interface {
	Next() uint64
	Modulus() uint64
}

// Normalize maps a raw residue into [0, 1) by dividing it by the modulus.
// Moduli wider than 53 bits can round raw/modulus up to 1, which is clamped
// to the largest float64 below 1.
func Normalize(raw, modulus uint64) float64 {
	f := float64(raw) / float64(modulus)
	if f >= 1 {
		return math.Nextafter(1, 0)
	}
	return f
}

// Take draws count normalized values from g in generation order.
func Take(g Generator, count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	m := g.Modulus()
	values := make([]float64, count)
	for i := range values {
		values[i] = Normalize(g.Next(), m)
	}
	return values
}

// SyncGenerator is concurrency safe generator
type SyncGenerator struct {
	g  Generator
	mu sync.Mutex
}

// Next implements Generator.
func (g *SyncGenerator) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.g.Next()
}

// Modulus implements Generator.
func (g *SyncGenerator) Modulus() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.g.Modulus()
}

// NewSyncGenerator create a new SyncGenerator
func NewSyncGenerator(g Generator) *SyncGenerator {
	return &SyncGenerator{g: g}
}
