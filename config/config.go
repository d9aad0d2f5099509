// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// QueriesConfig is settings for generating random queries from a reference
type QueriesConfig struct {
	// the path to the reference genome FASTA file
	In string `mapstructure:"in"`

	// the path the generated queries are written to
	Out string `mapstructure:"out"`

	// the number of queries to generate
	Count int `mapstructure:"count"`

	// the minimum query length, inclusive
	MinLen int `mapstructure:"min-len"`

	// the maximum query length, exclusive
	MaxLen int `mapstructure:"max-len"`

	// the random seed, 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`

	// cap on rejected draws per query, 0 retries forever
	MaxRetries int `mapstructure:"max-retries"`
}

// PlotsConfig is settings for rendering the benchmark charts
type PlotsConfig struct {
	// the directory the chart PNGs are written to
	Out string `mapstructure:"out"`
}

// Config is the root-level settings struct, a mix of defaults
// and command line arguments
type Config struct {
	// queries settings passed thru CLI
	Queries QueriesConfig `mapstructure:"queries"`

	// plots settings passed thru CLI
	Plots PlotsConfig `mapstructure:"plots"`
}

// New returns a new Config struct populated by Viper settings
// and/or command line arguments
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
