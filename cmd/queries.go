package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dando18/cmsc858d-assignment-2/config"
	"github.com/Dando18/cmsc858d-assignment-2/internal/fasta"
	"github.com/Dando18/cmsc858d-assignment-2/internal/sample"
)

// queriesCmd represents the queries command
var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Generate random query reads from a reference genome",
	Long: `Generate random query reads from a reference genome <FASTA>

Each query is a random window of the reference: its length is drawn uniformly
from [min-len, max-len) and its offset uniformly from the positions where the
window fits. Windows containing the ambiguous base 'N' are rejected and
redrawn so every emitted query occurs verbatim in the reference. Queries are
written in FASTA format with ">{index}:{length}" headers, ready to feed to
the query engine under test`,
	Run: runQueries,
}

// set flags
func init() {
	RootCmd.AddCommand(queriesCmd)

	queriesCmd.Flags().StringP("in", "i", "", "Input file name of the reference genome <FASTA>")
	queriesCmd.Flags().StringP("out", "o", "", "Output file name for the generated queries <FASTA>")
	queriesCmd.Flags().IntP("count", "n", 10000, "Number of queries to generate")
	queriesCmd.Flags().Int("min-len", 20, "Minimum query length (inclusive)")
	queriesCmd.Flags().Int("max-len", 40, "Maximum query length (exclusive)")
	queriesCmd.Flags().Int64("seed", 0, "Random seed, 0 seeds from the clock")
	queriesCmd.Flags().Int("max-retries", 0, "Cap on rejected draws per query, 0 retries forever")

	queriesCmd.MarkFlagRequired("in")
	queriesCmd.MarkFlagRequired("out")

	// Bind the parameters to viper
	viper.BindPFlag("queries.in", queriesCmd.Flags().Lookup("in"))
	viper.BindPFlag("queries.out", queriesCmd.Flags().Lookup("out"))
	viper.BindPFlag("queries.count", queriesCmd.Flags().Lookup("count"))
	viper.BindPFlag("queries.min-len", queriesCmd.Flags().Lookup("min-len"))
	viper.BindPFlag("queries.max-len", queriesCmd.Flags().Lookup("max-len"))
	viper.BindPFlag("queries.seed", queriesCmd.Flags().Lookup("seed"))
	viper.BindPFlag("queries.max-retries", queriesCmd.Flags().Lookup("max-retries"))
}

// runQueries reads the reference, samples queries, and writes the output file
func runQueries(cmd *cobra.Command, args []string) {
	q := config.New().Queries

	ref, err := fasta.ReadReference(q.In)
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	seed := q.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &sample.Sampler{
		Rand:       rand.New(rand.NewSource(seed)),
		Forbidden:  'N',
		MaxRetries: q.MaxRetries,
	}
	records, err := s.Generate(ref, q.Count, q.MinLen, q.MaxLen)
	if err != nil {
		stderr.Fatalf("failed to generate queries: %v", err)
	}

	if err := fasta.WriteQueries(q.Out, records); err != nil {
		stderr.Fatalf("%v", err)
	}

	stderr.Printf("wrote %d queries to %s", len(records), q.Out)
}
