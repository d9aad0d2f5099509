package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dando18/cmsc858d-assignment-2/internal/sample"
)

func Test_ReadReference(t *testing.T) {
	seq, err := ReadReference(filepath.Join("..", "..", "test", "ref.fa"))
	if err != nil {
		t.Fatalf("ReadReference() err = %v", err)
	}

	if len(seq) < 1 {
		t.Fatal("failed to read a sequence from the reference file")
	}
	if strings.ContainsAny(string(seq), "> \t\r\n") {
		t.Errorf("reference contains header or whitespace characters: %q", seq)
	}
}

func Test_ReadReference_firstRecordOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.fa")
	contents := ">chr1 test\nACGTACGT\nACGT\n>chr2\nTTTT\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	seq, err := ReadReference(path)
	if err != nil {
		t.Fatalf("ReadReference() err = %v", err)
	}
	if string(seq) != "ACGTACGTACGT" {
		t.Errorf("ReadReference() = %q, want joined lines of the first record only", seq)
	}
}

func Test_ReadReference_errors(t *testing.T) {
	type args struct {
		contents string
		missing  bool
	}
	tests := []struct {
		name string
		args args
	}{
		{
			"missing file",
			args{missing: true},
		},
		{
			"empty file",
			args{contents: ""},
		},
		{
			"no header",
			args{contents: "ACGTACGT\nACGT\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ref.fa")
			if !tt.args.missing {
				if err := os.WriteFile(path, []byte(tt.args.contents), 0644); err != nil {
					t.Fatal(err)
				}
			}

			if _, err := ReadReference(path); err == nil {
				t.Error("ReadReference() err = nil, want an error")
			}
		})
	}
}

func Test_WriteQueries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "queries.fa")

	records := []sample.Record{
		{Index: 0, Frag: []byte("ACGTACGT")},
		{Index: 1, Frag: []byte("TTAG")},
	}
	if err := WriteQueries(path, records); err != nil {
		t.Fatalf("WriteQueries() err = %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := ">0:8\nACGTACGT\n>1:4\nTTAG\n"
	if string(out) != want {
		t.Errorf("WriteQueries() wrote %q, want %q", out, want)
	}

	// the staging file must not survive the rename
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir holds %d files, want only queries.fa", len(entries))
	}
}
