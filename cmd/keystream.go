package cmd

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/tutils/prng/bbs"
	"github.com/tutils/prng/counter"
	"github.com/tutils/prng/counter/period"
	"github.com/tutils/prng/crypt/xor"
	"github.com/tutils/prng/logging"
)

func newKeystreamCmd(v *viper.Viper) *cobra.Command {
	// keystreamCmd represents the keystream command
	keystreamCmd := &cobra.Command{
		Use:   "keystream",
		Short: "Blum Blum Shub keystream cipher",
		Long: `Xor standard input with a Blum Blum Shub keystream and write the result to
standard output. Running it again with the same primes and key restores the
input, For example:
  prng keystream --p=4294967291 --q=4294967279 --key=816559 < plain > cipher
  prng keystream --p=4294967291 --q=4294967279 --key=816559 < cipher > plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadBBS(v, "keystream", false)
			if err != nil {
				return err
			}
			key := int64(p.Seed)
			if !v.GetBool("example") {
				if err := requireKeys(v, "keystream.key"); err != nil {
					return err
				}
				if key, err = getInt64(v, "keystream.key"); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) && !v.GetBool("keystream.force") {
				return errors.New("refusing to write a keystream to a terminal, use --force")
			}

			newer, err := bbs.SourceNewer(p.P, p.Q)
			if err != nil {
				return err
			}
			c := period.NewPeriodCounter(time.Second)
			w := xor.NewCrypt(key).NewEncoder(counter.NewWriter(out, c), xor.WithEncoderRandomSourceNewer(newer))
			if _, err := io.Copy(w, cmd.InOrStdin()); err != nil {
				return err
			}
			logging.Log().Info().
				Uint64("p", p.P).
				Uint64("q", p.Q).
				Int64("bytes", c.Value()).
				Int64("bytes_per_sec", c.AverageRatePerSec()).
				Msg("keystream applied")
			return nil
		},
	}

	flags := keystreamCmd.Flags()
	flags.Uint64("p", 0, "first prime, congruent to 3 mod 4")
	flags.Uint64("q", 0, "second prime, congruent to 3 mod 4")
	flags.Int64P("key", "k", 0, "keystream key")
	flags.Bool("force", false, "write to a terminal")
	for _, name := range []string{"p", "q", "key", "force"} {
		bindFlag(v, "keystream."+name, flags.Lookup(name))
	}
	return keystreamCmd
}
