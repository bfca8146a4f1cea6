package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/prng/logging"
	"github.com/tutils/prng/output"
	"github.com/tutils/prng/randtest"
)

func newTestCmd(v *viper.Viper) *cobra.Command {
	// testCmd represents the test command
	testCmd := &cobra.Command{
		Use:   "test",
		Short: "Uniformity tests",
		Long: `Run the chi-square test over ten equal subdivisions of [0, 1) and the
Kolmogorov-Smirnov test on a generated file, For example:
  prng test --input=output.txt --samples=100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString("test.input")
			values, err := output.ReadFile(path, 0)
			if err != nil {
				return err
			}
			r, err := randtest.Run(values, v.GetInt("test.samples"))
			if err != nil {
				return err
			}
			logging.Log().Debug().Str("input", path).Int("samples", r.Samples).Msg("tested")

			w := cmd.OutOrStdout()
			switch f := v.GetString("test.format"); f {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			case "text":
				writeReport(w, path, r)
				return nil
			default:
				return fmt.Errorf("unknown report format %q", f)
			}
		},
	}

	flags := testCmd.Flags()
	flags.StringP("input", "i", "output.txt", "file of generated values")
	flags.Int("samples", 100, "values used by the Kolmogorov-Smirnov test, 0 for all")
	flags.String("format", "text", "report format (text, json)")
	for _, name := range []string{"input", "samples", "format"} {
		bindFlag(v, "test."+name, flags.Lookup(name))
	}
	return testCmd
}

func verdict(reject bool) string {
	if reject {
		return "REJECT"
	}
	return "FAIL TO REJECT"
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func writeReport(w io.Writer, path string, r *randtest.Report) {
	fmt.Fprintf(w, "TEST SUITE FOR: %s\n\n", path)

	fmt.Fprintf(w, "CHI-SQUARE (%d values, %d bins): %s\n", r.Samples, randtest.Bins, ftoa(r.ChiSquare))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Level", "Critical", "Null hypothesis"})
	for _, v := range r.ChiVerdicts {
		table.Append([]string{ftoa(v.Level), ftoa(v.Critical), verdict(v.Reject)})
	}
	table.Render()

	fmt.Fprintf(w, "\nKOLMOGOROV-SMIRNOV (%d values): D+=%s D-=%s D=%s\n",
		r.KSSamples, ftoa(r.KS.DPlus), ftoa(r.KS.DMinus), ftoa(r.KS.D))
	table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"Alpha", "Critical", "Null hypothesis"})
	for _, v := range r.KSVerdicts {
		table.Append([]string{ftoa(v.Level), ftoa(v.Critical), verdict(v.Reject)})
	}
	table.Render()
}
