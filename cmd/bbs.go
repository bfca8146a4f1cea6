package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/prng/bbs"
	"github.com/tutils/prng/logging"
	"github.com/tutils/prng/output"
)

func newBBSCmd(v *viper.Viper) *cobra.Command {
	// bbsCmd represents the bbs command
	bbsCmd := &cobra.Command{
		Use:   "bbs",
		Short: "Blum Blum Shub generator",
		Long: `Generate x[i] = x[i-1]^2 mod n with n = p*q starting from the seed and write
every x[i]/n to the output file, For example:
  prng bbs --p=71 --q=67 --seed=651 --count=100 --output=output.txt
  prng bbs --p=4294967291 --q=4294967279 --seed=816559 --count=1000 --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadBBS(v, "bbs", true)
			if err != nil {
				return err
			}
			count, err := getCount(v, "bbs.count", v.GetBool("example"))
			if err != nil {
				return err
			}

			g, err := bbs.NewWithParams(p)
			if err != nil {
				return err
			}
			log := logging.Log().With().
				Uint64("p", p.P).
				Uint64("q", p.Q).
				Uint64("seed", p.Seed).
				Uint64("modulus", g.Modulus()).
				Int("count", count).
				Logger()

			if err := p.CheckSecure(); err != nil {
				if v.GetBool("bbs.strict") {
					return err
				}
				log.Warn().Err(err).Msg("parameters do not meet the Blum Blum Shub security precondition")
			}

			values := make([]float64, count)
			for i := range values {
				values[i] = g.NextNormalized()
			}
			path := v.GetString("bbs.output")
			if err := output.WriteFile(path, values, output.WithPrecision(v.GetInt("bbs.precision"))); err != nil {
				return err
			}
			log.Info().Str("output", path).Uint64("state", g.State()).Msg("sequence written")
			return nil
		},
	}

	flags := bbsCmd.Flags()
	flags.Uint64("p", 0, "first prime, congruent to 3 mod 4")
	flags.Uint64("q", 0, "second prime, congruent to 3 mod 4")
	flags.Uint64("seed", 0, "seed in [1, p*q), coprime to p*q")
	flags.IntP("count", "n", 0, "number of values to generate")
	flags.StringP("output", "o", "output.txt", "output file")
	flags.Bool("strict", false, "fail unless p, q are distinct Blum primes and the seed is coprime to p*q")
	flags.Int("precision", -1, "significant digits per value, -1 for shortest exact")
	for _, name := range []string{"p", "q", "seed", "count", "output", "strict", "precision"} {
		bindFlag(v, "bbs."+name, flags.Lookup(name))
	}
	return bbsCmd
}
