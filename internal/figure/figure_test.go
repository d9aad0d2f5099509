package figure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Dando18/cmsc858d-assignment-2/internal/bench"
)

func buildTrials() []bench.Trial {
	return []bench.Trial{
		{SeqLength: 1000, Preftab: 0, SABuildTime: 12, PreftabBuildTime: 0, FileSize: 2.1e6},
		{SeqLength: 10000, Preftab: 0, SABuildTime: 140, PreftabBuildTime: 0, FileSize: 2.2e7},
		{SeqLength: 1000, Preftab: 4, SABuildTime: 12, PreftabBuildTime: 3, FileSize: 2.4e6},
		{SeqLength: 10000, Preftab: 4, SABuildTime: 140, PreftabBuildTime: 9, FileSize: 2.5e7},
	}
}

func queryTrials() []bench.Trial {
	return []bench.Trial{
		{SeqLength: 1000, Preftab: 4, Mode: "naive", AvgQueryTime: 0.8},
		{SeqLength: 10000, Preftab: 4, Mode: "naive", AvgQueryTime: 1.4},
		{SeqLength: 1000, Preftab: 4, Mode: "simpleaccel", AvgQueryTime: 0.3},
		{SeqLength: 10000, Preftab: 4, Mode: "simpleaccel", AvgQueryTime: 0.5},
	}
}

// each chart should render to a non-empty PNG
func Test_WriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figs")

	err := WriteAll(dir, buildTrials(), buildTrials(), queryTrials())
	if err != nil {
		t.Fatalf("WriteAll() err = %v", err)
	}

	for _, name := range []string{BuildTimePNG, FileSizePNG, QueryTimePNG} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing chart %s: %v", name, err)
			continue
		}
		if info.Size() < 1 {
			t.Errorf("chart %s is empty", name)
		}
	}
}

func Test_QueryTime_missingMode(t *testing.T) {
	// only naive trials present; the simpleaccel lines are simply skipped
	trials := queryTrials()[:2]
	out := filepath.Join(t.TempDir(), QueryTimePNG)

	if err := QueryTime(trials, out); err != nil {
		t.Fatalf("QueryTime() err = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("missing chart: %v", err)
	}
}
