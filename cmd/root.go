package cmd

import (
	"os"
	"strings"

	"github.com/google/uuid"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/prng/logging"
)

const envPrefix = "PRNG"

// NewRootCmd builds the command tree around a fresh configuration.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "prng",
		Short: "Pseudo-random number generators.",
		Long: `Pseudo-random number generators.
Generate a sequence with the linear congruential method or Blum Blum Shub and
write it to a file, one value in [0, 1) per line. For example:
  prng lcg --seed=123496789 --modulus=214743648 --multiplier=65559 --increment=0 --count=100
  prng bbs --p=71 --q=67 --seed=651 --count=100 --output=bbs.txt
  prng test --input=bbs.txt
Parameters must be given explicitly; --example runs the built-in demonstration
parameters, which are not fit for real use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			if err := logging.Setup(v.GetString("log.level"), v.GetString("log.format")); err != nil {
				return err
			}
			l := logging.Log().With().Str("run", uuid.New().String()).Str("cmd", cmd.Name()).Logger()
			*logging.Log() = l
			if f := v.ConfigFileUsed(); f != "" {
				l.Debug().Str("file", f).Msg("using config file")
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.prng.yaml)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "auto", "log format (auto, console, json)")
	flags.Bool("example", false, "use the built-in demonstration parameters")
	bindFlag(v, "log.level", flags.Lookup("log-level"))
	bindFlag(v, "log.format", flags.Lookup("log-format"))
	bindFlag(v, "example", flags.Lookup("example"))

	rootCmd.AddCommand(
		newLCGCmd(v),
		newBBSCmd(v),
		newTestCmd(v),
		newKeystreamCmd(v),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logging.Log().Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv() // read in environment variables that match

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
		return v.ReadInConfig()
	}

	// Find home directory.
	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	// Search config in home directory with name ".prng" (without extension).
	v.AddConfigPath(home)
	v.SetConfigName(".prng")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}
