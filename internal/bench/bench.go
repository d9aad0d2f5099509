// Package bench loads benchmark trial CSVs and averages repeated trials.
//
// Trials come from the suffix array build and query experiments. An
// experiment is identified by its sequence length, prefix table size, and
// (for query trials) execution mode; repetitions of the same experiment are
// collapsed into one row by arithmetic mean before plotting.
package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Trial is one benchmark run, a single row of a results CSV.
type Trial struct {
	// SeqLength is the number of base pairs in the indexed sequence
	SeqLength int

	// Preftab is the prefix table size used to accelerate queries, 0 if none
	Preftab int

	// Mode is the query strategy, e.g. "naive" or "simpleaccel".
	// Build trials have no mode column and leave it empty
	Mode string

	// SABuildTime is the suffix array construction time (ms)
	SABuildTime float64

	// PreftabBuildTime is the prefix table construction time (ms)
	PreftabBuildTime float64

	// FileSize is the serialized index size in bytes
	FileSize float64

	// AvgQueryTime is the mean per-query time for the trial (ms)
	AvgQueryTime float64
}

// BuildTime is the total index construction time for the trial.
func (t Trial) BuildTime() float64 {
	return t.SABuildTime + t.PreftabBuildTime
}

// key identifies an experiment; repeated trials share a key.
type key struct {
	seqLength int
	preftab   int
	mode      string
}

// Load parses a results CSV into trials. The header row names the columns,
// which may appear in any order; columns beyond the known set are ignored
// and known columns absent from the file are left zero.
func Load(path string) ([]Trial, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("%s has no header row", path)
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}

	// field readers keyed by column name
	field := func(row []string, name string) (string, bool) {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	var trials []Trial
	for n, row := range rows[1:] {
		var t Trial
		var err error

		if v, ok := field(row, "seq_length"); ok {
			if t.SeqLength, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("%s row %d: bad seq_length %q", path, n+2, v)
			}
		}
		if v, ok := field(row, "preftab"); ok {
			if t.Preftab, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("%s row %d: bad preftab %q", path, n+2, v)
			}
		}
		if v, ok := field(row, "mode"); ok {
			t.Mode = v
		}
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{"sa_build_time", &t.SABuildTime},
			{"preftab_build_time", &t.PreftabBuildTime},
			{"file_size", &t.FileSize},
			{"avg_query_time", &t.AvgQueryTime},
		} {
			v, ok := field(row, f.name)
			if !ok {
				continue
			}
			if *f.dst, err = strconv.ParseFloat(v, 64); err != nil {
				return nil, fmt.Errorf("%s row %d: bad %s %q", path, n+2, f.name, v)
			}
		}

		trials = append(trials, t)
	}

	return trials, nil
}

// Average collapses repeated trials of the same experiment into a single
// trial whose numeric columns are the arithmetic means of the repetitions.
// The result is sorted by sequence length, then prefix table size, then mode.
func Average(trials []Trial) []Trial {
	sums := map[key]*Trial{}
	counts := map[key]int{}

	for _, t := range trials {
		k := key{t.SeqLength, t.Preftab, t.Mode}
		if s, ok := sums[k]; ok {
			s.SABuildTime += t.SABuildTime
			s.PreftabBuildTime += t.PreftabBuildTime
			s.FileSize += t.FileSize
			s.AvgQueryTime += t.AvgQueryTime
		} else {
			c := t
			sums[k] = &c
		}
		counts[k]++
	}

	avgs := make([]Trial, 0, len(sums))
	for k, s := range sums {
		n := float64(counts[k])
		s.SABuildTime /= n
		s.PreftabBuildTime /= n
		s.FileSize /= n
		s.AvgQueryTime /= n
		avgs = append(avgs, *s)
	}

	sort.Slice(avgs, func(i, j int) bool {
		if avgs[i].SeqLength != avgs[j].SeqLength {
			return avgs[i].SeqLength < avgs[j].SeqLength
		}
		if avgs[i].Preftab != avgs[j].Preftab {
			return avgs[i].Preftab < avgs[j].Preftab
		}
		return avgs[i].Mode < avgs[j].Mode
	})
	return avgs
}

// Preftabs returns the distinct prefix table sizes among trials, ascending.
func Preftabs(trials []Trial) []int {
	seen := map[int]bool{}
	var sizes []int
	for _, t := range trials {
		if !seen[t.Preftab] {
			seen[t.Preftab] = true
			sizes = append(sizes, t.Preftab)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// Filter returns the trials with the given prefix table size and mode, in
// input order. An empty mode matches any mode.
func Filter(trials []Trial, preftab int, mode string) []Trial {
	var out []Trial
	for _, t := range trials {
		if t.Preftab != preftab {
			continue
		}
		if mode != "" && t.Mode != mode {
			continue
		}
		out = append(out, t)
	}
	return out
}
