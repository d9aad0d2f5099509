// Package fasta reads reference genomes and writes query records.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dando18/cmsc858d-assignment-2/internal/sample"
)

// maxLine allows genomes stored as one very long sequence line
const maxLine = 64 * 1024 * 1024

// ReadReference reads the first record of a FASTA file: the header line is
// discarded and the sequence lines are joined, terminators stripped. Records
// after the first are ignored.
func ReadReference(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return nil, fmt.Errorf("%s is empty, expected a FASTA record", path)
	}
	if header := sc.Bytes(); len(header) == 0 || header[0] != '>' {
		return nil, fmt.Errorf("%s is not FASTA, first line is not a '>' header", path)
	}

	seq := make([]byte, 0, 1<<20)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) > 0 && line[0] == '>' {
			break // only the first record is read
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return seq, nil
}

// WriteQueries writes records to path in FASTA format, two lines per record:
// a ">{index}:{length}" header and the fragment. The file appears atomically,
// it is staged in a temp file and renamed into place, so a failed run never
// leaves a truncated query file behind.
func WriteQueries(path string, records []sample.Record) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".queries-*.fa")
	if err != nil {
		return fmt.Errorf("failed to stage query file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	w := bufio.NewWriter(tmp)
	for _, r := range records {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.ID(), r.Frag); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write query %d: %w", r.Index, err)
		}
	}

	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return os.Rename(tmp.Name(), path)
}
