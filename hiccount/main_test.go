package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nimezhu/hicstat/hic/hictest"
)

const res = 500000

func twoChromosomes() hictest.File {
	zoom := func(records ...hictest.Record) []hictest.Zoom {
		return []hictest.Zoom{{BinSize: res, BlockBinCount: 4, BlockColumnCount: 1,
			Blocks: map[int32][]hictest.Record{0: records}}}
	}
	return hictest.File{
		Genome:      "synthetic",
		Chromosomes: []hictest.Chr{{Name: "All", Length: 2}, {Name: "chr1", Length: res}, {Name: "chr2", Length: res}},
		BpRes:       []int32{2500000, res},
		Matrices: []hictest.Matrix{
			{Chr1: 1, Chr2: 1, Zooms: zoom(hictest.Record{BinX: 0, BinY: 0, Counts: 5})},
			{Chr1: 1, Chr2: 2, Zooms: zoom(
				hictest.Record{BinX: 0, BinY: 0, Counts: 3},
				hictest.Record{BinX: 1, BinY: 1, Counts: float32(math.NaN())},
			)},
		},
	}
}

func writeHiC(t *testing.T, f hictest.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inter.hic")
	if err := hictest.WriteFile(path, f); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCounts(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{writeHiC(t, twoChromosomes())}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	want := "Total number of Intra-chromosomal contacts is 10\n" +
		"Total number of Inter-chromosomal contacts is 6\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunIdempotent(t *testing.T) {
	path := writeHiC(t, twoChromosomes())
	var first, second, stderr bytes.Buffer
	run(context.Background(), []string{path}, &first, &stderr)
	run(context.Background(), []string{path}, &second, &stderr)
	if first.String() == "" || first.String() != second.String() {
		t.Errorf("runs differ: %q vs %q", first.String(), second.String())
	}
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), nil, &stdout, &stderr)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want no totals", stdout.String())
	}
	if !strings.Contains(stderr.String(), usageLine) {
		t.Errorf("stderr = %q, want usage line", stderr.String())
	}
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(text, []byte("chr1\t0\t100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	noRes := twoChromosomes()
	noRes.BpRes = []int32{100000}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.hic")},
		{"not a hic file", text},
		{"resolution unavailable", writeHiC(t, noRes)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), []string{tt.path}, &stdout, &stderr)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want no totals", stdout.String())
			}
			if stderr.Len() == 0 {
				t.Error("expected a diagnostic on stderr")
			}
		})
	}
}
