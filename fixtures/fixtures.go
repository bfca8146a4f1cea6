// Package fixtures holds example parameters for demonstrations and tests.
//
// None of these are fit for real use: the moduli are tiny and the values are
// public. Callers that need random numbers must supply their own parameters.
package fixtures

import (
	"github.com/tutils/prng/bbs"
	"github.com/tutils/prng/lcg"
)

// Count is the number of values the example runs produce.
const Count = 100

// LCG is the reference linear congruential example.
var LCG = lcg.Params{
	Seed:       123496789,
	Modulus:    214743648,
	Multiplier: 65559,
	Increment:  0,
}

// BBS is the reference Blum Blum Shub example run.
var BBS = bbs.Params{P: 71, Q: 67, Seed: 651}

// BBSSmall is the textbook Blum Blum Shub example with n = 209.
var BBSSmall = bbs.Params{P: 11, Q: 19, Seed: 4}
