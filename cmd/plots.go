package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dando18/cmsc858d-assignment-2/config"
	"github.com/Dando18/cmsc858d-assignment-2/internal/bench"
	"github.com/Dando18/cmsc858d-assignment-2/internal/figure"
)

// plotsCmd represents the plots command
var plotsCmd = &cobra.Command{
	Use:   "plots [buildsa-sequential] [buildsa-parallel] [querysa-sequential] [querysa-parallel]",
	Short: "Render benchmark comparison charts from results CSVs",
	Long: `Render benchmark comparison charts from results CSVs

Expects four results files: suffix array build benchmarks for the sequential
and multi-threaded builds, and query benchmarks for the sequential and
multi-threaded runs. Repeated trials of an experiment are averaged before
plotting. Three charts are written to the output directory:

1. sequential vs multi-threaded build time by sequence length
2. serialized index file size by sequence length
3. naive vs accelerated average query time by sequence length`,
	Args: cobra.ExactArgs(4),
	Run:  runPlots,
}

// set flags
func init() {
	RootCmd.AddCommand(plotsCmd)

	plotsCmd.Flags().StringP("out", "o", "figs", "Output directory for the chart PNGs")

	viper.BindPFlag("plots.out", plotsCmd.Flags().Lookup("out"))
}

// runPlots loads the four results files, averages repeated trials, and
// renders the charts
func runPlots(cmd *cobra.Command, args []string) {
	c := config.New().Plots

	loaded := make([][]bench.Trial, len(args))
	for i, path := range args {
		trials, err := bench.Load(path)
		if err != nil {
			stderr.Fatalf("%v", err)
		}
		loaded[i] = bench.Average(trials)
	}
	// the multi-threaded query results (loaded[3]) are validated but not
	// charted; query time is compared across modes, not thread counts
	buildSeq, buildPar, querySeq := loaded[0], loaded[1], loaded[2]

	if err := figure.WriteAll(c.Out, buildSeq, buildPar, querySeq); err != nil {
		stderr.Fatalf("%v", err)
	}

	stderr.Printf("wrote charts to %s", c.Out)
}
