// Package cmd is for command line interactions with the benchmark tooling
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "sabench",
	Short: `Generate test inputs for a suffix array query engine and chart its benchmark results.
Random queries are drawn from a reference genome; results CSVs are averaged and plotted`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
