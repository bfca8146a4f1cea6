package bbs

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"

	"github.com/tutils/prng"
	"github.com/tutils/prng/modmath"
)

// primality rounds for big.Int.ProbablyPrime; exact below 2^64
const primeRounds = 20

// Params configure a Generator.
type Params struct {
	P    uint64 `mapstructure:"p"`
	Q    uint64 `mapstructure:"q"`
	Seed uint64 `mapstructure:"seed"`
}

// Validate reports every parameter outside the generator's domain: a zero
// factor, a product that overflows 64 bits, or a seed not below p*q.
func (p Params) Validate() error {
	_, err := p.modulus()
	return err
}

// Modulus returns p*q.
func (p Params) Modulus() (uint64, error) {
	return p.modulus()
}

func (p Params) modulus() (uint64, error) {
	var errs error
	if p.P == 0 {
		errs = multierror.Append(errs, fmt.Errorf("bbs: p must be positive: %w", prng.ErrDomain))
	}
	if p.Q == 0 {
		errs = multierror.Append(errs, fmt.Errorf("bbs: q must be positive: %w", prng.ErrDomain))
	}
	if errs != nil {
		return 0, errs
	}
	n, ok := modmath.MulChecked(p.P, p.Q)
	if !ok {
		return 0, fmt.Errorf("bbs: modulus %d*%d: %w", p.P, p.Q, prng.ErrOverflow)
	}
	if p.Seed >= n {
		return 0, fmt.Errorf("bbs: seed %d outside [0, %d): %w", p.Seed, n, prng.ErrDomain)
	}
	return n, nil
}

// CheckSecure reports every way p falls short of the Blum Blum Shub security
// precondition: p and q distinct primes, both congruent to 3 mod 4, and a
// seed greater than 1 and coprime to n.
func (p Params) CheckSecure() error {
	n, err := p.modulus()
	if err != nil {
		return err
	}
	var errs error
	for _, f := range []struct {
		name  string
		value uint64
	}{{"p", p.P}, {"q", p.Q}} {
		if !new(big.Int).SetUint64(f.value).ProbablyPrime(primeRounds) {
			errs = multierror.Append(errs, fmt.Errorf("bbs: %s=%d is not prime: %w", f.name, f.value, prng.ErrDomain))
		} else if f.value%4 != 3 {
			errs = multierror.Append(errs, fmt.Errorf("bbs: %s=%d is not congruent to 3 mod 4: %w", f.name, f.value, prng.ErrDomain))
		}
	}
	if p.P == p.Q {
		errs = multierror.Append(errs, fmt.Errorf("bbs: p and q must be distinct: %w", prng.ErrDomain))
	}
	if p.Seed < 2 {
		errs = multierror.Append(errs, fmt.Errorf("bbs: seed %d is a fixed point: %w", p.Seed, prng.ErrDomain))
	} else if gcd := modmath.GCD(p.Seed, n); gcd != 1 {
		errs = multierror.Append(errs, fmt.Errorf("bbs: seed %d shares factor %d with n: %w", p.Seed, gcd, prng.ErrDomain))
	}
	return errs
}
