package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tutils/prng"
	"github.com/tutils/prng/bbs"
	"github.com/tutils/prng/fixtures"
	"github.com/tutils/prng/lcg"
)

func bindFlag(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// requireKeys reports every key that is set neither by flag, environment
// nor config file.
func requireKeys(v *viper.Viper, keys ...string) error {
	var errs error
	for _, key := range keys {
		if !v.IsSet(key) {
			errs = multierror.Append(errs, fmt.Errorf("missing parameter %s", key))
		}
	}
	return errs
}

func getUint64(v *viper.Viper, key string) (uint64, error) {
	var (
		x   uint64
		err error
	)
	// flag and environment values arrive as strings
	if s, ok := v.Get(key).(string); ok {
		x, err = strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	} else {
		x, err = cast.ToUint64E(v.Get(key))
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %v: %w", key, err, prng.ErrDomain)
	}
	return x, nil
}

func getInt64(v *viper.Viper, key string) (int64, error) {
	var (
		x   int64
		err error
	)
	if s, ok := v.Get(key).(string); ok {
		x, err = strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	} else {
		x, err = cast.ToInt64E(v.Get(key))
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %v: %w", key, err, prng.ErrDomain)
	}
	return x, nil
}

func getUint64s(v *viper.Viper, keys ...string) ([]uint64, error) {
	var errs error
	values := make([]uint64, len(keys))
	for i, key := range keys {
		x, err := getUint64(v, key)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		values[i] = x
	}
	return values, errs
}

func getCount(v *viper.Viper, key string, example bool) (int, error) {
	if example && !v.IsSet(key) {
		return fixtures.Count, nil
	}
	if !example {
		if err := requireKeys(v, key); err != nil {
			return 0, err
		}
	}
	count, err := cast.ToIntE(v.Get(key))
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%s: invalid count %v: %w", key, v.Get(key), prng.ErrDomain)
	}
	return count, nil
}

func loadLCG(v *viper.Viper) (lcg.Params, int, error) {
	example := v.GetBool("example")
	if !example {
		if err := requireKeys(v, "lcg.seed", "lcg.modulus", "lcg.multiplier", "lcg.increment", "lcg.count"); err != nil {
			return lcg.Params{}, 0, err
		}
	}
	count, err := getCount(v, "lcg.count", example)
	if err != nil {
		return lcg.Params{}, 0, err
	}
	if example {
		return fixtures.LCG, count, nil
	}
	vals, err := getUint64s(v, "lcg.seed", "lcg.modulus", "lcg.multiplier", "lcg.increment")
	if err != nil {
		return lcg.Params{}, 0, err
	}
	p := lcg.Params{Seed: vals[0], Modulus: vals[1], Multiplier: vals[2], Increment: vals[3]}
	return p, count, p.Validate()
}

func loadBBS(v *viper.Viper, prefix string, withSeed bool) (bbs.Params, error) {
	if v.GetBool("example") {
		return fixtures.BBS, nil
	}
	keys := []string{prefix + ".p", prefix + ".q"}
	if withSeed {
		keys = append(keys, prefix+".seed")
	}
	if err := requireKeys(v, keys...); err != nil {
		return bbs.Params{}, err
	}
	vals, err := getUint64s(v, keys...)
	if err != nil {
		return bbs.Params{}, err
	}
	p := bbs.Params{P: vals[0], Q: vals[1]}
	if withSeed {
		p.Seed = vals[2]
	}
	return p, p.Validate()
}
