// Package figure renders the benchmark comparison charts.
package figure

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Dando18/cmsc858d-assignment-2/internal/bench"
)

// chart file names within the output directory
const (
	BuildTimePNG = "seq_length_vs_build_time.png"
	FileSizePNG  = "seq_length_vs_file_size.png"
	QueryTimePNG = "seq_length_vs_query_time.png"
)

// WriteAll renders every comparison chart into dir, creating it if needed.
// buildSeq and buildPar are averaged build trials for the sequential and
// multi-threaded runs; querySeq holds the averaged query trials.
func WriteAll(dir string, buildSeq, buildPar, querySeq []bench.Trial) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create figure directory: %w", err)
	}

	if err := BuildTime(buildSeq, buildPar, filepath.Join(dir, BuildTimePNG)); err != nil {
		return err
	}
	if err := FileSize(buildSeq, filepath.Join(dir, FileSizePNG)); err != nil {
		return err
	}
	return QueryTime(querySeq, filepath.Join(dir, QueryTimePNG))
}

// BuildTime charts total build time against sequence length, one line per
// prefix table size for each of the sequential and multi-threaded runs.
func BuildTime(seq, par []bench.Trial, out string) error {
	p := newPlot("Sequence Length vs Build Time", "Time (ms)")

	for _, k := range bench.Preftabs(seq) {
		if err := addLine(p, fmt.Sprintf("k=%d sequential", k),
			bench.Filter(seq, k, ""), bench.Trial.BuildTime); err != nil {
			return err
		}
	}
	for _, k := range bench.Preftabs(par) {
		if err := addLine(p, fmt.Sprintf("k=%d multi-threaded", k),
			bench.Filter(par, k, ""), bench.Trial.BuildTime); err != nil {
			return err
		}
	}

	return save(p, out)
}

// FileSize charts serialized index size (MB) against sequence length, one
// line per prefix table size.
func FileSize(seq []bench.Trial, out string) error {
	p := newPlot("Sequence Length vs File Size", "File Size (MB)")

	megabytes := func(t bench.Trial) float64 { return t.FileSize / 1e6 }
	for _, k := range bench.Preftabs(seq) {
		if err := addLine(p, fmt.Sprintf("k=%d", k),
			bench.Filter(seq, k, ""), megabytes); err != nil {
			return err
		}
	}

	return save(p, out)
}

// QueryTime charts average per-query time against sequence length, one line
// per prefix table size for each query mode present in the trials.
func QueryTime(trials []bench.Trial, out string) error {
	p := newPlot("Sequence Length vs Average Query Time", "Avg. Time per Query (ms)")

	queryTime := func(t bench.Trial) float64 { return t.AvgQueryTime }
	for _, mode := range modes(trials) {
		for _, k := range bench.Preftabs(trials) {
			rows := bench.Filter(trials, k, mode)
			if len(rows) == 0 {
				continue
			}
			if err := addLine(p, fmt.Sprintf("k=%d %s", k, mode), rows, queryTime); err != nil {
				return err
			}
		}
	}

	return save(p, out)
}

// newPlot builds a chart with the shared axis styling: a log-10 X axis of
// sequence lengths and a top legend.
func newPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "# Base Pairs"
	p.Y.Label.Text = yLabel
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Legend.Left = true
	return p
}

// addLine plots y(trial) against sequence length for a series of trials.
func addLine(p *plot.Plot, label string, trials []bench.Trial, y func(bench.Trial) float64) error {
	pts := make(plotter.XYs, len(trials))
	for i, t := range trials {
		pts[i].X = float64(t.SeqLength)
		pts[i].Y = y(t)
	}
	if err := plotutil.AddLinePoints(p, label, pts); err != nil {
		return fmt.Errorf("failed to plot %s: %w", label, err)
	}
	return nil
}

func save(p *plot.Plot, out string) error {
	if err := p.Save(8*vg.Inch, 5*vg.Inch, out); err != nil {
		return fmt.Errorf("failed to save %s: %w", out, err)
	}
	return nil
}

// modes returns the distinct query modes among trials, in first-seen order.
func modes(trials []bench.Trial) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range trials {
		if !seen[t.Mode] {
			seen[t.Mode] = true
			out = append(out, t.Mode)
		}
	}
	return out
}
