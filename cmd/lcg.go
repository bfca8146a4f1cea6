package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/prng/lcg"
	"github.com/tutils/prng/logging"
	"github.com/tutils/prng/output"
)

func newLCGCmd(v *viper.Viper) *cobra.Command {
	// lcgCmd represents the lcg command
	lcgCmd := &cobra.Command{
		Use:   "lcg",
		Short: "Linear congruential method",
		Long: `Generate x[i] = (a*x[i-1] + c) mod m starting from x[0] = seed and write
every x[i]/m to the output file, For example:
  prng lcg --seed=123496789 --modulus=214743648 --multiplier=65559 --increment=0 --count=100 --output=output.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, count, err := loadLCG(v)
			if err != nil {
				return err
			}
			log := logging.Log().With().
				Uint64("seed", p.Seed).
				Uint64("modulus", p.Modulus).
				Uint64("multiplier", p.Multiplier).
				Uint64("increment", p.Increment).
				Int("count", count).
				Logger()

			values, err := lcg.Generate(p.Seed, p.Modulus, p.Multiplier, p.Increment, count)
			if err != nil {
				return err
			}
			path := v.GetString("lcg.output")
			if err := output.WriteFile(path, values, output.WithPrecision(v.GetInt("lcg.precision"))); err != nil {
				return err
			}
			log.Info().Str("output", path).Msg("sequence written")
			return nil
		},
	}

	flags := lcgCmd.Flags()
	flags.Uint64("seed", 0, "seed x0, below the modulus")
	flags.Uint64P("modulus", "m", 0, "modulus m")
	flags.Uint64P("multiplier", "a", 0, "multiplier a")
	flags.Uint64P("increment", "c", 0, "increment c")
	flags.IntP("count", "n", 0, "number of values to generate")
	flags.StringP("output", "o", "output.txt", "output file")
	flags.Int("precision", -1, "significant digits per value, -1 for shortest exact")
	for _, name := range []string{"seed", "modulus", "multiplier", "increment", "count", "output", "precision"} {
		bindFlag(v, "lcg."+name, flags.Lookup(name))
	}
	return lcgCmd
}
