package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Set("queries.in", "ref.fa")
	viper.Set("queries.count", 250)
	viper.Set("queries.min-len", 20)
	viper.Set("queries.max-len", 40)
	viper.Set("plots.out", "figs")
	defer viper.Reset()

	c := New()

	if c.Queries.In != "ref.fa" {
		t.Errorf("Queries.In = %q, want ref.fa", c.Queries.In)
	}
	if c.Queries.Count != 250 {
		t.Errorf("Queries.Count = %d, want 250", c.Queries.Count)
	}
	if c.Queries.MinLen != 20 || c.Queries.MaxLen != 40 {
		t.Errorf("length range = [%d,%d), want [20,40)", c.Queries.MinLen, c.Queries.MaxLen)
	}
	if c.Plots.Out != "figs" {
		t.Errorf("Plots.Out = %q, want figs", c.Plots.Out)
	}
}
