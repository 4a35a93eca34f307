package summary

import (
	"bytes"
	"testing"
)

func TestTotalsAdd(t *testing.T) {
	var tot Totals
	tot = tot.Add(Pair{0, 0}, 5)
	tot = tot.Add(Pair{0, 1}, 3)
	tot = tot.Add(Pair{1, 1}, 2)
	if tot != (Totals{Intra: 7, Inter: 3}) {
		t.Errorf("totals = %+v", tot)
	}
}

func TestTotalsMerge(t *testing.T) {
	a := Totals{1, 2}
	b := Totals{10, 20}
	c := Totals{100, 200}
	if a.Merge(b) != b.Merge(a) {
		t.Error("Merge not commutative")
	}
	if a.Merge(b).Merge(c) != a.Merge(b.Merge(c)) {
		t.Error("Merge not associative")
	}
	if (Totals{}).Merge(a) != a {
		t.Error("zero Totals is not the identity")
	}
}

func TestReportDoubles(t *testing.T) {
	for _, tot := range []Totals{{}, {5, 3}, {1 << 40, 7}} {
		got := tot.Report()
		if got.Intra != 2*tot.Intra || got.Inter != 2*tot.Inter {
			t.Errorf("Report(%+v) = %+v", tot, got)
		}
	}
	if fillUnderDiagonal {
		t.Error("doubling assumes the under-diagonal half is not filled")
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, Totals{Intra: 10, Inter: 6}); err != nil {
		t.Fatal(err)
	}
	want := "Total number of Intra-chromosomal contacts is 10\n" +
		"Total number of Inter-chromosomal contacts is 6\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
